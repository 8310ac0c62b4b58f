package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency display follows the pt-BR locale ("R$ 1.234,56"). This is a
// presentation concern only; prices stay plain floats in the data model.
var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders a price for display.
func FormatPrice(v float64) string {
	return brl.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}
