package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/pricing"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyCatalogPath    = "catalog.path"
	KeyFixedSlat      = "pricing.fixed_slat"
	KeyAdjustableSlat = "pricing.adjustable_slat"
	KeySimpleLock     = "pricing.simple_lock"
	KeyHandleWithLock = "pricing.handle_with_lock"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyFixedSlat, pricing.DefaultPriceList.FixedSlatPerSqM)
	v.SetDefault(KeyAdjustableSlat, pricing.DefaultPriceList.AdjustableSlatPerSqM)
	v.SetDefault(KeySimpleLock, pricing.DefaultPriceList.SimpleLockSurcharge)
	v.SetDefault(KeyHandleWithLock, pricing.DefaultPriceList.HandleWithLockSurcharge)
}

// Load prepares v from an optional .env file, the config file and SHUTTER_
// environment variables. A missing config file is not an error.
func Load(v *viper.Viper, cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(ExpandPath(cfgFile))
	} else {
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// LoadPriceList reads the pricing section of v and validates it. Values that
// are not numbers are rejected instead of read as zero.
func LoadPriceList(v *viper.Viper) (pricing.PriceList, error) {
	var prices pricing.PriceList
	fields := []struct {
		dst *float64
		key string
	}{
		{dst: &prices.FixedSlatPerSqM, key: KeyFixedSlat},
		{dst: &prices.AdjustableSlatPerSqM, key: KeyAdjustableSlat},
		{dst: &prices.SimpleLockSurcharge, key: KeySimpleLock},
		{dst: &prices.HandleWithLockSurcharge, key: KeyHandleWithLock},
	}

	for _, f := range fields {
		value, err := cast.ToFloat64E(v.Get(f.key))
		if err != nil {
			return pricing.PriceList{}, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, f.key, err)
		}
		*f.dst = value
	}

	if err := prices.Validate(); err != nil {
		return pricing.PriceList{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	return prices, nil
}
