package logic

import "github.com/shopspring/decimal"

// DefaultTaxRate is the 5% tax applied when none is configured.
var DefaultTaxRate = decimal.RequireFromString("0.05")

// Totals is always derived from a Cart; it is never stored on its own.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals rounds at every step: tax is taken from the rounded
// subtotal, and total from the rounded subtotal plus rounded tax.
func ComputeTotals(cart Cart, taxRate decimal.Decimal) Totals {
	sum := decimal.Zero
	for _, li := range cart {
		sum = sum.Add(li.LineTotal)
	}

	subtotal := roundCents(sum)
	tax := roundCents(subtotal.Mul(taxRate))
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    roundCents(subtotal.Add(tax)),
	}
}

// roundCents rounds half away from zero to two places; amounts are never
// negative, so this is round-half-up.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
