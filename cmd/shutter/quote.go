package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/cli"
	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
)

type quoteOptions struct {
	slats     string
	opening   string
	closure   string
	color     string
	width     float64
	height    float64
	quantity  int
	panels    int
	widthSet  bool
	heightSet bool
	json      bool
	breakdown bool
}

func quoteCmd(v *viper.Viper) *cobra.Command {
	var opts quoteOptions

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a single shutter configuration",
		Long: `Price one shutter configuration given on the command line.

Width and height are in centimeters. Without both of them no quote is
available yet and the summary says so.

Examples:
  shutter quote --width 100 --height 100
  shutter quote -W 120 -H 150 --slats adjustable --color nussbaum --panels 2
  shutter quote -W 120 -H 150 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.widthSet = cmd.Flags().Changed("width")
			opts.heightSet = cmd.Flags().Changed("height")
			return runQuote(cmd, v, opts)
		},
	}

	addConfigurationFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the quote as JSON")
	cmd.Flags().BoolVarP(&opts.breakdown, "breakdown", "b", false, "Show how the total was computed")

	return cmd
}

// addConfigurationFlags registers the flags that describe one configuration.
func addConfigurationFlags(cmd *cobra.Command, opts *quoteOptions) {
	cmd.Flags().Float64VarP(&opts.width, "width", "W", 0, "Width in cm")
	cmd.Flags().Float64VarP(&opts.height, "height", "H", 0, "Height in cm")
	cmd.Flags().IntVarP(&opts.quantity, "quantity", "q", 1, "Number of shutters")
	cmd.Flags().IntVarP(&opts.panels, "panels", "p", model.MinPanelCount, "Panels per shutter (1-4)")
	cmd.Flags().StringVar(&opts.slats, "slats", model.SlatFixed.String(), "Slat type (fixed, adjustable)")
	cmd.Flags().StringVar(&opts.opening, "opening", model.OpeningRight.String(), "Opening side (DX, SX)")
	cmd.Flags().StringVar(&opts.closure, "closure", model.ClosureSimpleLock.String(), "Closure (simple_lock, handle_with_lock)")
	cmd.Flags().StringVarP(&opts.color, "color", "c", model.DefaultColorID, "Finish color id (see shutter colors)")
}

func runQuote(cmd *cobra.Command, v *viper.Viper, opts quoteOptions) error {
	cfg, err := opts.configuration()
	if err != nil {
		return err
	}

	engine, err := initEngine(v)
	if err != nil {
		return err
	}

	quote, err := engine.Quote(cfg)
	if err != nil {
		return fmt.Errorf("failed to compute quote: %w", err)
	}
	slog.Debug("Computed quote", "available", quote.Available, "total", quote.Total)

	out := cmd.OutOrStdout()
	if opts.json {
		return writeQuoteJSON(out, cfg, quote)
	}

	color := lookupColor(engine.Catalog(), cfg.ColorID)
	fmt.Fprintln(out, cli.RenderSummary(cfg, quote, color))
	if opts.breakdown && quote.Available {
		fmt.Fprintln(out, cli.RenderBreakdown(quote))
	}
	if !quote.Available {
		fmt.Fprintln(out, cli.FormatInfo("Set --width and --height to get a price"))
	}
	return nil
}

// configuration turns the flag values into a configuration. Unknown enum
// values are user errors; out of range numbers are left for the engine.
func (o quoteOptions) configuration() (model.Configuration, error) {
	slats, err := model.ParseSlatType(o.slats)
	if err != nil {
		return model.Configuration{}, invalidFlag("slats", err)
	}
	opening, err := model.ParseOpeningSide(o.opening)
	if err != nil {
		return model.Configuration{}, invalidFlag("opening", err)
	}
	closure, err := model.ParseClosureType(o.closure)
	if err != nil {
		return model.Configuration{}, invalidFlag("closure", err)
	}

	cfg := model.NewConfiguration().
		WithQuantity(o.quantity).
		WithPanelCount(o.panels).
		WithSlatType(slats).
		WithOpeningSide(opening).
		WithClosureType(closure).
		WithColor(o.color)

	if o.widthSet {
		cfg = cfg.WithWidth(&o.width)
	}
	if o.heightSet {
		cfg = cfg.WithHeight(&o.height)
	}
	return cfg, nil
}

func invalidFlag(name string, err error) error {
	return common.NewUserError("invalid --"+name, fmt.Errorf("%w: %w", common.ErrInvalidInput, err))
}

type quoteJSON struct {
	Total         *int64            `json:"total"`
	Breakdown     *breakdownJSON    `json:"breakdown,omitempty"`
	Configuration configurationJSON `json:"configuration"`
	Available     bool              `json:"available"`
}

type configurationJSON struct {
	WidthCm     *float64 `json:"width_cm"`
	HeightCm    *float64 `json:"height_cm"`
	SlatType    string   `json:"slat_type"`
	OpeningSide string   `json:"opening_side"`
	ClosureType string   `json:"closure_type"`
	Color       string   `json:"color"`
	Quantity    int      `json:"quantity"`
	PanelCount  int      `json:"panel_count"`
}

type breakdownJSON struct {
	AreaSqM            float64 `json:"area_sqm"`
	BaseUnitPrice      float64 `json:"base_unit_price"`
	SurfacePrice       float64 `json:"surface_price"`
	ColorIncrement     float64 `json:"color_increment"`
	ColorAdjustedPrice float64 `json:"color_adjusted_price"`
	ClosureSurcharge   float64 `json:"closure_surcharge"`
	UnroundedTotal     float64 `json:"unrounded_total"`
	Multiplier         int     `json:"multiplier"`
}

func writeQuoteJSON(w io.Writer, cfg model.Configuration, quote model.Quote) error {
	out := quoteJSON{
		Available: quote.Available,
		Configuration: configurationJSON{
			WidthCm:     cfg.WidthCm,
			HeightCm:    cfg.HeightCm,
			SlatType:    cfg.SlatType.String(),
			OpeningSide: cfg.OpeningSide.String(),
			ClosureType: cfg.ClosureType.String(),
			Color:       cfg.ColorID,
			Quantity:    cfg.Quantity,
			PanelCount:  cfg.PanelCount,
		},
	}

	if quote.Available {
		total := quote.Total
		b := quote.Breakdown
		out.Total = &total
		out.Breakdown = &breakdownJSON{
			AreaSqM:            b.AreaSqM,
			BaseUnitPrice:      b.BaseUnitPrice,
			SurfacePrice:       b.SurfacePrice,
			ColorIncrement:     b.ColorIncrement,
			ColorAdjustedPrice: b.ColorAdjustedPrice,
			ClosureSurcharge:   b.ClosureSurcharge,
			UnroundedTotal:     b.UnroundedTotal,
			Multiplier:         b.Multiplier,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode quote: %w", err)
	}
	return nil
}

// lookupColor returns the catalog entry for id, or a bare entry named after
// id when the catalog does not know it.
func lookupColor(cat *catalog.Catalog, id string) model.ColorEntry {
	color, err := cat.Lookup(id)
	if err != nil {
		return model.ColorEntry{ID: id, DisplayName: id}
	}
	return color
}
