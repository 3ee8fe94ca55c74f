package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "$1,234.50", Price("1234.5", "USD"))
	assert.Equal(t, "$0.00", Price("0", "USD"))
	assert.Equal(t, "€19.99", Price("19.99", "EUR"))
	assert.Equal(t, "¥1,500.00", Price("1500", "JPY"))
	// unparseable amounts pass through untouched
	assert.Equal(t, "n/a", Price("n/a", "USD"))
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 25, DiscountPercent("100", "75"))
	assert.Equal(t, 33, DiscountPercent("29.95", "19.95"))
	assert.Equal(t, 0, DiscountPercent("75", "75"))
	assert.Equal(t, 0, DiscountPercent("75", "100"))
	assert.Equal(t, 0, DiscountPercent("", "19.95"))
}

func TestTitleFromHandle(t *testing.T) {
	assert.Equal(t, "Summer Sale", TitleFromHandle("summer-sale"))
	assert.Equal(t, "New Arrivals 2026", TitleFromHandle("new-arrivals-2026"))
	assert.Equal(t, "", TitleFromHandle("  "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a very lo…", Truncate("a very long product title", 9))
	// rune-safe
	assert.Equal(t, "日本…", Truncate("日本語のタイトル", 2))
}
