package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/shutter-quote/internal/cli"
	"github.com/Veraticus/shutter-quote/internal/config"
)

func batchCmd(v *viper.Viper) *cobra.Command {
	var (
		output string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file.csv>",
		Short: "Quote every configuration in a CSV file",
		Long: `Quote every row of a CSV file and print a summary.

Columns, in order: width,height,quantity,panels,slats,opening,closure,color.
A header row is optional, lines starting with # are ignored and trailing
columns may be omitted to keep their defaults. Rows that fail to parse or
price are reported and the run continues.

Examples:
  shutter batch orders.csv
  shutter batch orders.csv --output quotes.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, v, args[0], output, quiet)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write per-row results as CSV to this file")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Hide the progress bar")

	return cmd
}

func runBatch(cmd *cobra.Command, v *viper.Viper, input, output string, quiet bool) error {
	engine, err := initEngine(v)
	if err != nil {
		return err
	}

	path := config.ExpandPath(input)
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("Failed to close batch file", "error", closeErr)
		}
	}()

	quoter := cli.NewBatchQuoter(engine, cmd.ErrOrStderr(), quiet)
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	defer handler.Stop()
	ctx := handler.HandleInterrupts(cmd.Context(), quoter.Progress)

	slog.Info("Starting batch quote", "file", path)
	result, err := quoter.Run(ctx, file)
	if err != nil {
		if !handler.WasInterrupted() && !errors.Is(err, context.Canceled) {
			return err
		}
		slog.Warn("Batch interrupted", "rows_processed", len(result.Rows))
	}

	out := cmd.OutOrStdout()
	for _, row := range result.Rows {
		if row.Err != nil {
			fmt.Fprintln(out, cli.FormatError(fmt.Sprintf("line %d: %v", row.Line, row.Err)))
		}
	}

	if output != "" {
		if err := writeResultsFile(config.ExpandPath(output), result); err != nil {
			return err
		}
		fmt.Fprintln(out, cli.FormatSuccess("Results written to "+output))
	}

	fmt.Fprintln(out, cli.RenderBatchSummary(result))

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d rows failed", result.Failed, len(result.Rows))
	}
	return nil
}

func writeResultsFile(path string, result cli.BatchResult) (err error) {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return cli.WriteResults(file, result)
}
