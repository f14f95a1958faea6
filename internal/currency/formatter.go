package currency

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RoundToNice rounds a converted amount to a display-friendly number using
// magnitude-dependent steps: nearest 1 below 100, nearest 10 below 1,000,
// nearest 100 below 10,000, nearest 1,000 below 100,000, nearest 5,000 below
// 1,000,000, nearest 10,000 above that.
func RoundToNice(v float64) int64 {
	step := niceStep(v)
	return int64(math.Round(v/step)) * int64(step)
}

func niceStep(v float64) float64 {
	abs := math.Abs(v)
	switch {
	case abs < 100:
		return 1
	case abs < 1_000:
		return 10
	case abs < 10_000:
		return 100
	case abs < 100_000:
		return 1_000
	case abs < 1_000_000:
		return 5_000
	default:
		return 10_000
	}
}

// FormatPrice converts a USD base price for display in the currency of cfg.
// USD passes through unconverted; other currencies are converted with the
// table's rate, rounded to a nice number, and grouped per the config locale.
// A nil or empty table means rates are still loading; a plain "$<amount>"
// placeholder is returned instead of blocking.
func FormatPrice(amountUSD float64, cfg Config, table *RateTable) string {
	if !table.Loaded() {
		return "$" + trimFloat(amountUSD)
	}

	if cfg.CurrencyCode == "USD" {
		return cfg.Symbol + groupNumber(int64(math.Round(amountUSD)), cfg.Locale)
	}

	converted := amountUSD * table.RateFor(cfg.CurrencyCode)
	nice := RoundToNice(converted)
	return cfg.Symbol + groupNumber(nice, cfg.Locale)
}

// groupNumber formats n with the digit grouping of the given BCP 47 locale.
// Unparseable locales fall back to en-US grouping.
func groupNumber(n int64, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return message.NewPrinter(tag).Sprint(number.Decimal(n))
}

// trimFloat renders a float without a trailing ".00" for whole amounts.
func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.2f", v)
}
