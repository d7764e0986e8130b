package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/shutter-quote/internal/model"
)

// Result is the configuration and quote on screen when the user left.
type Result struct {
	Config model.Configuration
	Quote  model.Quote
}

// Run starts the configurator and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Quoter == nil {
		return Result{}, fmt.Errorf("quoter is required")
	}
	if cfg.Catalog == nil {
		return Result{}, fmt.Errorf("catalog is required")
	}

	m, err := newModel(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("invalid initial configuration: %w", err)
	}

	program := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, fmt.Errorf("TUI error: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("TUI returned unexpected model %T", final)
	}

	slog.Debug("Configurator closed", "available", m.quote.Available, "total", m.quote.Total)
	return Result{Config: m.Configuration(), Quote: m.Quote()}, nil
}
