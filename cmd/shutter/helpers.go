package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/config"
	"github.com/Veraticus/shutter-quote/internal/pricing"
)

// loadCatalog returns the catalog file named by catalog.path, or the built-in
// catalog when none is configured.
func loadCatalog(v *viper.Viper) (*catalog.Catalog, error) {
	path := config.ExpandPath(v.GetString(config.KeyCatalogPath))
	if path == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded color catalog", "path", path, "colors", cat.Len())
	return cat, nil
}

// initEngine builds the quote engine from the configured catalog and price list.
func initEngine(v *viper.Viper) (*pricing.Engine, error) {
	cat, err := loadCatalog(v)
	if err != nil {
		return nil, err
	}

	prices, err := config.LoadPriceList(v)
	if err != nil {
		return nil, err
	}

	engine, err := pricing.NewEngine(cat, prices)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote engine: %w", err)
	}
	return engine, nil
}
