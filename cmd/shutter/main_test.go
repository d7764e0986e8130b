package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/cli"
	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
	"github.com/Veraticus/shutter-quote/internal/testutil"
)

// runCLI executes the root command with args against a fresh viper instance
// and an empty home directory.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := newRootCmd(viper.New())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestQuoteCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "minimal configuration",
			args:     []string{"quote", "--width", "100", "--height", "100"},
			contains: []string{"Order Summary", "€400", "Bianco 9010 opaco"},
		},
		{
			name:     "adjustable slats",
			args:     []string{"quote", "-W", "100", "-H", "100", "--slats", "adjustable"},
			contains: []string{"€500", "Adjustable slats"},
		},
		{
			name:     "italian option codes",
			args:     []string{"quote", "-W", "100", "-H", "100", "--slats", "orientabili", "--closure", "maniglia", "--opening", "sx"},
			contains: []string{"€475", "Left opening (SX)", "Handle with lock"},
		},
		{
			name:     "surcharged color rounds half up",
			args:     []string{"quote", "-W", "100", "-H", "100", "--color", "ral_7001"},
			contains: []string{"€418", "RAL 7001 opaco"},
		},
		{
			name:     "missing height",
			args:     []string{"quote", "--width", "100"},
			contains: []string{"no quote yet", "Set --width and --height"},
		},
		{
			name:     "breakdown",
			args:     []string{"quote", "-W", "100", "-H", "100", "--breakdown"},
			contains: []string{"1.0000 m²", "400.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestQuoteCmd_JSON(t *testing.T) {
	out, err := runCLI(t, "quote",
		"--width", "120", "--height", "150",
		"--quantity", "3", "--panels", "2",
		"--slats", "adjustable", "--closure", "handle_with_lock",
		"--color", "nussbaum", "--json")
	require.NoError(t, err)

	var got quoteJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.True(t, got.Available)
	require.NotNil(t, got.Total)
	assert.Equal(t, int64(5253), *got.Total)
	require.NotNil(t, got.Breakdown)
	assert.Equal(t, 6, got.Breakdown.Multiplier)
	assert.Equal(t, "nussbaum", got.Configuration.Color)
	assert.Equal(t, "adjustable", got.Configuration.SlatType)
}

func TestQuoteCmd_JSONUnavailable(t *testing.T) {
	out, err := runCLI(t, "quote", "--json")
	require.NoError(t, err)

	var got quoteJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Available)
	assert.Nil(t, got.Total)
	assert.Nil(t, got.Breakdown)
	assert.Nil(t, got.Configuration.WidthCm)
}

func TestQuoteCmd_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{
			name:    "unknown slat type",
			args:    []string{"quote", "-W", "100", "-H", "100", "--slats", "wooden"},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "unknown color",
			args:    []string{"quote", "-W", "100", "-H", "100", "--color", "ral_9999"},
			wantErr: common.ErrUnknownColor,
		},
		{
			name:    "zero quantity",
			args:    []string{"quote", "-W", "100", "-H", "100", "--quantity", "0"},
			wantErr: common.ErrInvalidQuantity,
		},
		{
			name:    "zero panels",
			args:    []string{"quote", "-W", "100", "-H", "100", "--panels", "0"},
			wantErr: common.ErrInvalidPanelCount,
		},
		{
			name:    "invalid log level",
			args:    []string{"quote", "--log-level", "loud"},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQuoteCmd_UnknownColorWithoutDimensions(t *testing.T) {
	out, err := runCLI(t, "quote", "--color", "ral_9999")
	require.NoError(t, err)
	assert.Contains(t, out, "no quote yet")
	assert.Contains(t, out, "ral_9999")
}

func TestQuoteCmd_PriceListFromConfigFile(t *testing.T) {
	cfgPath := testutil.WriteFile(t, "config.yaml", `
pricing:
  fixed_slat: 400
  simple_lock: 60
`)

	out, err := runCLI(t, "--config", cfgPath, "quote", "-W", "100", "-H", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "€460")
}

func TestQuoteCmd_PriceListFromEnvironment(t *testing.T) {
	t.Setenv("SHUTTER_PRICING_SIMPLE_LOCK", "100")

	out, err := runCLI(t, "quote", "-W", "100", "-H", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "€450")
}

func TestQuoteCmd_NonNumericPriceFromEnvironment(t *testing.T) {
	t.Setenv("SHUTTER_PRICING_FIXED_SLAT", "abc")

	out, err := runCLI(t, "quote", "-W", "100", "-H", "100")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.NotContains(t, out, "€")
}

func TestQuoteCmd_InvalidPriceList(t *testing.T) {
	cfgPath := testutil.WriteFile(t, "config.yaml", "pricing:\n  adjustable_slat: -1\n")

	_, err := runCLI(t, "--config", cfgPath, "quote", "-W", "100", "-H", "100")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.ErrorIs(t, err, common.ErrInvalidPriceList)
}

func TestQuoteCmd_CustomCatalog(t *testing.T) {
	catPath := testutil.WriteFile(t, "colors.yaml", testutil.CatalogYAML)

	out, err := runCLI(t, "--catalog", catPath, "quote", "-W", "100", "-H", "100", "--color", "antracite")
	require.NoError(t, err)
	assert.Contains(t, out, "€435")
	assert.Contains(t, out, "Antracite")

	_, err = runCLI(t, "--catalog", catPath, "quote", "-W", "100", "-H", "100", "--color", "nussbaum")
	assert.ErrorIs(t, err, common.ErrUnknownColor)
}

func TestConfigureCmd_RejectsInvalidPreset(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{name: "too many panels", args: []string{"configure", "--panels", "7"}, wantErr: common.ErrInvalidPanelCount},
		{name: "zero panels", args: []string{"configure", "--panels", "0"}, wantErr: common.ErrInvalidPanelCount},
		{name: "zero quantity", args: []string{"configure", "--quantity", "0"}, wantErr: common.ErrInvalidQuantity},
		{name: "unknown color", args: []string{"configure", "--color", "ral_9999"}, wantErr: common.ErrUnknownColor},
		{name: "unknown closure", args: []string{"configure", "--closure", "bolt"}, wantErr: common.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var userErr *common.UserError
			assert.ErrorAs(t, err, &userErr)
		})
	}
}

func TestValidatePreset(t *testing.T) {
	cfg := model.NewConfiguration().WithPanelCount(model.MaxPanelCount).WithQuantity(12)
	assert.NoError(t, validatePreset(cfg, catalog.Default()))

	err := validatePreset(cfg.WithPanelCount(model.MaxPanelCount+1), catalog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--panels must be between 1 and 4, got 5")
}

func TestColorsCmd(t *testing.T) {
	out, err := runCLI(t, "colors")
	require.NoError(t, err)

	assert.Contains(t, out, "Finishes (7)")
	for _, id := range []string{"bianco_9010", "ral_7001", "ral_7016", "ral_6005", "ral_8017", "golden_oak", "nussbaum"} {
		assert.Contains(t, out, id)
	}
	assert.Less(t, strings.Index(out, "bianco_9010"), strings.Index(out, "nussbaum"))
}

func TestColorsCmd_CustomCatalog(t *testing.T) {
	catPath := testutil.WriteFile(t, "colors.yaml", testutil.CatalogYAML)

	out, err := runCLI(t, "--catalog", catPath, "colors")
	require.NoError(t, err)
	assert.Contains(t, out, "Finishes (2)")
	assert.Contains(t, out, "+10%")
	assert.NotContains(t, out, "nussbaum")
}

func TestColorsCmd_CatalogPathFromEnvironment(t *testing.T) {
	catPath := testutil.WriteFile(t, "colors.yaml", testutil.CatalogYAML)
	t.Setenv("SHUTTER_CATALOG_PATH", "$CATALOG_DIR/colors.yaml")
	t.Setenv("CATALOG_DIR", filepath.Dir(catPath))

	out, err := runCLI(t, "colors")
	require.NoError(t, err)
	assert.Contains(t, out, "Finishes (2)")
}

func TestColorsCmd_MissingCatalog(t *testing.T) {
	_, err := runCLI(t, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "colors")
	require.Error(t, err)
}

func TestBatchCmd(t *testing.T) {
	input := testutil.WriteFile(t, "orders.csv", strings.Join([]string{
		"width,height,quantity,panels,slats,opening,closure,color",
		"100,100",
		"100,100,2,2",
		",",
	}, "\n"))
	output := filepath.Join(t.TempDir(), "quotes.csv")

	out, err := runCLI(t, "batch", input, "--output", output, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Batch Complete")
	assert.Contains(t, out, cli.FormatAmount(2000))

	results, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "line,total,status,error\n2,400,quoted,\n3,1600,quoted,\n4,,unavailable,\n", string(results))
}

func TestBatchCmd_FailedRows(t *testing.T) {
	input := testutil.WriteFile(t, "orders.csv", "100,100\n100,100,1,1,fixed,DX,simple_lock,ral_9999\n")

	out, err := runCLI(t, "batch", input, "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 rows failed")
	assert.Contains(t, out, "line 2")
	assert.Contains(t, out, "unknown color")
}

func TestBatchCmd_MissingFile(t *testing.T) {
	_, err := runCLI(t, "batch", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatchCmd_RequiresFile(t *testing.T) {
	_, err := runCLI(t, "batch")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "shutter version dev\n", out)
}
