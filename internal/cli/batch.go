package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/schollz/progressbar/v3"

	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
)

// BatchColumns is the expected column order of a batch CSV file.
var BatchColumns = []string{"width", "height", "quantity", "panels", "slats", "opening", "closure", "color"}

// Quoter prices a single configuration.
type Quoter interface {
	Quote(cfg model.Configuration) (model.Quote, error)
}

// BatchRow is the outcome for one input line.
type BatchRow struct {
	Err    error
	Config model.Configuration
	Quote  model.Quote
	Line   int
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Rows        []BatchRow
	Quoted      int
	Unavailable int
	Failed      int
	GrandTotal  int64
}

// BatchQuoter quotes every row of a CSV file.
type BatchQuoter struct {
	quoter    Quoter
	writer    io.Writer
	processed atomic.Int64
	total     atomic.Int64
	quiet     bool
}

// NewBatchQuoter creates a batch quoter reporting progress to writer.
func NewBatchQuoter(quoter Quoter, writer io.Writer, quiet bool) *BatchQuoter {
	if writer == nil {
		writer = io.Discard
	}
	return &BatchQuoter{
		quoter: quoter,
		writer: writer,
		quiet:  quiet,
	}
}

// Run reads configurations from r and quotes them in order. Row level
// failures are recorded and processing continues. A canceled context stops
// the run and returns the rows quoted so far together with ctx.Err().
func (b *BatchQuoter) Run(ctx context.Context, r io.Reader) (BatchResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return BatchResult{}, common.NewUserError("failed to read batch file", err)
	}

	startLine := 1
	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
		startLine = 2
	}

	var result BatchResult
	b.processed.Store(0)
	b.total.Store(int64(len(records)))
	bar := b.newProgressBar(len(records))

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		row := BatchRow{Line: startLine + i}
		row.Config, row.Err = ParseRecord(record)
		if row.Err == nil {
			row.Quote, row.Err = b.quoter.Quote(row.Config)
		}

		switch {
		case row.Err != nil:
			result.Failed++
			slog.Debug("Batch row failed", "line", row.Line, "error", row.Err)
		case !row.Quote.Available:
			result.Unavailable++
		default:
			result.Quoted++
			result.GrandTotal = addTotal(result.GrandTotal, row.Quote.Total, row.Line)
		}
		result.Rows = append(result.Rows, row)
		b.processed.Add(1)

		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	return result, nil
}

// addTotal sums non-negative euro totals, capping at math.MaxInt64.
func addTotal(sum, total int64, line int) int64 {
	if total > math.MaxInt64-sum {
		slog.Warn("Batch grand total overflowed, capping", "line", line)
		return math.MaxInt64
	}
	return sum + total
}

// Progress describes how many rows the current run has processed. It is safe
// to call from another goroutine.
func (b *BatchQuoter) Progress() string {
	total := b.total.Load()
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("Processed %d of %d rows", b.processed.Load(), total)
}

func (b *BatchQuoter) newProgressBar(total int) *progressbar.ProgressBar {
	if b.quiet || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Quoting shutters...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(b.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), BatchColumns[0])
}

// ParseRecord turns one CSV record into a configuration. Width and height may
// be empty; every other trailing column may be omitted and then keeps its
// session default.
func ParseRecord(record []string) (model.Configuration, error) {
	if len(record) > len(BatchColumns) {
		return model.Configuration{}, fmt.Errorf("%w: expected at most %d columns, got %d", common.ErrInvalidInput, len(BatchColumns), len(record))
	}

	cfg := model.NewConfiguration()
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var err error
	if cfg.WidthCm, err = parseOptionalFloat(field(0), "width"); err != nil {
		return model.Configuration{}, err
	}
	if cfg.HeightCm, err = parseOptionalFloat(field(1), "height"); err != nil {
		return model.Configuration{}, err
	}
	if v := field(2); v != "" {
		if cfg.Quantity, err = strconv.Atoi(v); err != nil {
			return model.Configuration{}, fmt.Errorf("%w: quantity %q", common.ErrInvalidInput, v)
		}
	}
	if v := field(3); v != "" {
		if cfg.PanelCount, err = strconv.Atoi(v); err != nil {
			return model.Configuration{}, fmt.Errorf("%w: panels %q", common.ErrInvalidInput, v)
		}
	}
	if v := field(4); v != "" {
		if cfg.SlatType, err = model.ParseSlatType(v); err != nil {
			return model.Configuration{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
		}
	}
	if v := field(5); v != "" {
		if cfg.OpeningSide, err = model.ParseOpeningSide(v); err != nil {
			return model.Configuration{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
		}
	}
	if v := field(6); v != "" {
		if cfg.ClosureType, err = model.ParseClosureType(v); err != nil {
			return model.Configuration{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
		}
	}
	if v := field(7); v != "" {
		cfg.ColorID = v
	}

	return cfg, nil
}

func parseOptionalFloat(s, name string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", common.ErrInvalidInput, name, s)
	}
	return &v, nil
}

// WriteResults writes one CSV line per row: line, total, status and error.
// The total column is empty when no quote is available.
func WriteResults(w io.Writer, result BatchResult) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"line", "total", "status", "error"}); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}

	for _, row := range result.Rows {
		record := []string{strconv.Itoa(row.Line), "", "", ""}
		switch {
		case row.Err != nil:
			record[2] = "error"
			record[3] = row.Err.Error()
		case !row.Quote.Available:
			record[2] = "unavailable"
		default:
			record[1] = strconv.FormatInt(row.Quote.Total, 10)
			record[2] = "quoted"
		}
		if err := out.Write(record); err != nil {
			return fmt.Errorf("failed to write result for line %d: %w", row.Line, err)
		}
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}

// RenderBatchSummary renders the totals of a batch run.
func RenderBatchSummary(result BatchResult) string {
	lines := []string{
		fmt.Sprintf("  • Quoted: %d", result.Quoted),
		fmt.Sprintf("  • Missing dimensions: %d", result.Unavailable),
		fmt.Sprintf("  • Failed: %d", result.Failed),
		fmt.Sprintf("  • Grand total: %s", FormatAmount(result.GrandTotal)),
	}
	return RenderBox("Batch Complete", strings.Join(lines, "\n"))
}
