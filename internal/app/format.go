package app

import (
	"golang.org/x/text/message"
)

// FormatCLP renders whole pesos the way the catalog displays them,
// e.g. 1234567 -> "$1.234.567". Presentation only.
func FormatCLP(amount int64) string {
	p := message.NewPrinter(catalogLocale)
	return "$" + p.Sprintf("%d", amount)
}
