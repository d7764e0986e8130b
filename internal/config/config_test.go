package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/pricing"
)

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("SHUTTER_TEST_DIR", "/srv/shutter")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "blank", path: "   ", want: ""},
		{name: "absolute", path: "/etc/shutter.yaml", want: "/etc/shutter.yaml"},
		{name: "home", path: "~", want: home},
		{name: "home subdir", path: "~/colors.yaml", want: filepath.Join(home, "colors.yaml")},
		{name: "env var", path: "$SHUTTER_TEST_DIR/colors.yaml", want: "/srv/shutter/colors.yaml"},
		{name: "tilde in the middle", path: "/tmp/~x", want: "/tmp/~x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}

func TestDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "shutter"), Dir())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	v := viper.New()
	require.NoError(t, Load(v, ""))

	assert.Equal(t, "info", v.GetString(KeyLogLevel))
	assert.Equal(t, "console", v.GetString(KeyLogFormat))
	assert.Empty(t, v.GetString(KeyCatalogPath))

	prices, err := LoadPriceList(v)
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultPriceList, prices)
}

func TestLoad_ConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".config", "shutter")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
logging:
  level: debug
catalog:
  path: ~/colors.yaml
pricing:
  adjustable_slat: 500
`), 0o600))

	v := viper.New()
	require.NoError(t, Load(v, ""))

	assert.Equal(t, "debug", v.GetString(KeyLogLevel))
	assert.Equal(t, "~/colors.yaml", v.GetString(KeyCatalogPath))

	prices, err := LoadPriceList(v)
	require.NoError(t, err)
	assert.Equal(t, 500.0, prices.AdjustableSlatPerSqM)
	assert.Equal(t, pricing.DefaultPriceList.FixedSlatPerSqM, prices.FixedSlatPerSqM)
}

func TestLoad_ExplicitFileAndEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("SHUTTER_PRICING_HANDLE_WITH_LOCK", "30")

	cfgFile := filepath.Join(t.TempDir(), "shutter.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("pricing:\n  handle_with_lock: 20\n  simple_lock: 55\n"), 0o600))

	v := viper.New()
	require.NoError(t, Load(v, cfgFile))

	prices, err := LoadPriceList(v)
	require.NoError(t, err)
	assert.Equal(t, 30.0, prices.HandleWithLockSurcharge)
	assert.Equal(t, 55.0, prices.SimpleLockSurcharge)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHUTTER_LOGGING_FORMAT=json\n"), 0o600))
	// godotenv never overrides variables that are already set.
	t.Setenv("SHUTTER_LOGGING_FORMAT", "")
	require.NoError(t, os.Unsetenv("SHUTTER_LOGGING_FORMAT"))

	v := viper.New()
	require.NoError(t, Load(v, ""))

	assert.Equal(t, "json", v.GetString(KeyLogFormat))
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	t.Run("missing explicit file", func(t *testing.T) {
		err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		cfgFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("pricing: [unclosed\n"), 0o600))

		err := Load(viper.New(), cfgFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})
}

func TestLoadPriceList_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyFixedSlat, -10)

	_, err := LoadPriceList(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.ErrorIs(t, err, common.ErrInvalidPriceList)
}

func TestLoadPriceList_NotANumber(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "word", key: KeyFixedSlat, value: "abc"},
		{name: "empty string", key: KeySimpleLock, value: ""},
		{name: "decimal comma", key: KeyAdjustableSlat, value: "450,5"},
		{name: "list", key: KeyHandleWithLock, value: []any{25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := LoadPriceList(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadPriceList_NumericStrings(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyFixedSlat, "375.5")
	v.Set(KeySimpleLock, 40)

	prices, err := LoadPriceList(v)
	require.NoError(t, err)
	assert.Equal(t, 375.5, prices.FixedSlatPerSqM)
	assert.Equal(t, 40.0, prices.SimpleLockSurcharge)
}

func TestLoad_NonNumericEnvironmentPrice(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("SHUTTER_PRICING_FIXED_SLAT", "abc")

	v := viper.New()
	require.NoError(t, Load(v, ""))

	_, err := LoadPriceList(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
