package tui

import (
	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/model"
	"github.com/Veraticus/shutter-quote/internal/tui/themes"
)

// Quoter prices a configuration.
type Quoter interface {
	Quote(cfg model.Configuration) (model.Quote, error)
}

// Config holds TUI configuration.
type Config struct {
	Theme   themes.Theme
	Quoter  Quoter
	Catalog *catalog.Catalog
	Initial model.Configuration
	Width   int
	Height  int
	// ShowBreakdown starts with the price breakdown visible.
	ShowBreakdown bool
	ShowHelp      bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Catalog:  catalog.Default(),
		Initial:  model.NewConfiguration(),
		Width:    100,
		Height:   30,
		ShowHelp: true,
	}
}

// WithQuoter sets the pricing engine.
func WithQuoter(q Quoter) Option {
	return func(c *Config) {
		c.Quoter = q
	}
}

// WithCatalog sets the color catalog offered by the color selector.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Config) {
		c.Catalog = cat
	}
}

// WithInitialConfiguration sets the configuration the form starts from.
func WithInitialConfiguration(cfg model.Configuration) Option {
	return func(c *Config) {
		c.Initial = cfg.Clone()
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithBreakdown shows the price breakdown from the start.
func WithBreakdown(enabled bool) Option {
	return func(c *Config) {
		c.ShowBreakdown = enabled
	}
}
