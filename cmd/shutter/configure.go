package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/cli"
	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
	"github.com/Veraticus/shutter-quote/internal/tui"
)

func configureCmd(v *viper.Viper) *cobra.Command {
	var (
		opts      quoteOptions
		breakdown bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure a shutter interactively",
		Long: `Open the interactive configurator. The quote updates on every change.

The quote flags (--width, --color, ...) preset the form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.widthSet = cmd.Flags().Changed("width")
			opts.heightSet = cmd.Flags().Changed("height")
			return runConfigure(cmd, v, opts, breakdown)
		},
	}

	addConfigurationFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&breakdown, "breakdown", "b", false, "Start with the price breakdown visible")

	return cmd
}

func runConfigure(cmd *cobra.Command, v *viper.Viper, opts quoteOptions, breakdown bool) error {
	initial, err := opts.configuration()
	if err != nil {
		return err
	}

	engine, err := initEngine(v)
	if err != nil {
		return err
	}
	if err := validatePreset(initial, engine.Catalog()); err != nil {
		return err
	}

	// The TUI handles its own interrupts
	result, err := tui.Run(cmd.Context(),
		tui.WithQuoter(engine),
		tui.WithCatalog(engine.Catalog()),
		tui.WithInitialConfiguration(initial),
		tui.WithBreakdown(breakdown),
	)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Warn("Configurator interrupted")
			return nil
		}
		return fmt.Errorf("configurator failed: %w", err)
	}

	color := lookupColor(engine.Catalog(), result.Config.ColorID)
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(result.Config, result.Quote, color))
	return nil
}

// validatePreset rejects flag values the configurator form cannot show, so
// they are reported instead of silently replaced.
func validatePreset(cfg model.Configuration, cat *catalog.Catalog) error {
	if cfg.Quantity < 1 {
		return common.NewUserError(fmt.Sprintf("--quantity must be at least 1, got %d", cfg.Quantity), common.ErrInvalidQuantity)
	}
	if cfg.PanelCount < model.MinPanelCount || cfg.PanelCount > model.MaxPanelCount {
		return common.NewUserError(
			fmt.Sprintf("--panels must be between %d and %d, got %d", model.MinPanelCount, model.MaxPanelCount, cfg.PanelCount),
			common.ErrInvalidPanelCount,
		)
	}
	if !cat.Contains(cfg.ColorID) {
		return common.NewUserError(fmt.Sprintf("unknown --color %q, see shutter colors", cfg.ColorID), common.ErrUnknownColor)
	}
	return nil
}
