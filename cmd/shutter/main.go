// Package main contains the shutter CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/config"
)

var version = "dev"

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "shutter",
		Short: "🪟  Aluminum shutter price configurator",
		Long: `shutter: price configurable aluminum shutters.

Pick dimensions, slats, opening side, closure and finish and get a live quote,
either interactively (shutter configure) or from flags and CSV files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, cfgFile)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/shutter/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("catalog", "", "YAML color catalog replacing the built-in finishes")

	// Bind flags to viper
	_ = v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag(config.KeyCatalogPath, rootCmd.PersistentFlags().Lookup("catalog"))

	// Add commands
	rootCmd.AddCommand(quoteCmd(v))
	rootCmd.AddCommand(colorsCmd(v))
	rootCmd.AddCommand(configureCmd(v))
	rootCmd.AddCommand(batchCmd(v))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd(viper.GetViper()).ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if err := config.Load(v, cfgFile); err != nil {
		return err
	}

	if err := common.SetupLogger(cmd.ErrOrStderr(), v.GetString(config.KeyLogLevel), v.GetString(config.KeyLogFormat)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("Configuration loaded", "file", v.ConfigFileUsed())
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shutter version %s\n", version)
		},
	}
}
