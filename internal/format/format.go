package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.AmericanEnglish)
	titler  = cases.Title(language.AmericanEnglish)
)

// Price renders a gateway money value with its currency symbol and two
// decimals. Example: Price("1234.5", "USD") => "$1,234.50".
// Unparseable amounts are returned as-is rather than dropped.
func Price(amount, code string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return amount
	}
	return symbolFor(code) + printer.Sprintf("%.2f", f)
}

func symbolFor(code string) string {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return ""
	}
	switch unit {
	case currency.USD:
		return "$"
	case currency.JPY:
		return "¥"
	case currency.EUR:
		return "€"
	case currency.GBP:
		return "£"
	default:
		return unit.String() + " "
	}
}

// DiscountPercent returns the rounded percentage saved against the compare-at
// price, zero when compareAt does not exceed price. Display-only; the value
// is never persisted or sent back to the gateway.
func DiscountPercent(compareAt, price string) int {
	c, errC := strconv.ParseFloat(strings.TrimSpace(compareAt), 64)
	p, errP := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if errC != nil || errP != nil || c <= 0 || c <= p {
		return 0
	}
	return int(math.Round((c - p) / c * 100))
}

// Percent renders an integer percentage, e.g. Percent(25) => "25%".
func Percent(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// TitleFromHandle turns a URL slug into a display title, used as the fallback
// collection heading before the gateway returns one.
// Example: "summer-sale" => "Summer Sale".
func TitleFromHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return ""
	}
	return titler.String(strings.ReplaceAll(handle, "-", " "))
}

// Truncate shortens a title for card display, appending an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimRight(string(r[:max]), " ") + "…"
}
