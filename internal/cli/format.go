package cli

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veraticus/shutter-quote/internal/model"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "€"

// NoQuoteText is shown instead of a total when no quote is available.
const NoQuoteText = "no quote yet"

var amountPrinter = message.NewPrinter(language.Italian)

// FormatAmount formats a whole currency amount with Italian digit grouping,
// e.g. 1600 becomes "€1.600".
func FormatAmount(total int64) string {
	return CurrencySymbol + amountPrinter.Sprintf("%d", total)
}

// FormatQuote formats a quote total, or NoQuoteText when unavailable.
func FormatQuote(q model.Quote) string {
	if !q.Available {
		return NoQuoteText
	}
	return FormatAmount(q.Total)
}

// FormatDimension formats an optional centimeter value; unset values render as "—".
func FormatDimension(v *float64) string {
	if v == nil {
		return "—"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatPercent renders a surcharge rate such as 0.05 as "+5%".
func FormatPercent(rate float64) string {
	if rate == 0 {
		return "included"
	}
	s := strconv.FormatFloat(rate*100, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return "+" + s + "%"
}
