package billing

import (
	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeItemTotal derives a line item's total from quantity and unit price.
func ComputeItemTotal(item domain.LineItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
}

// ComputeItemTotals sets every item's total in place and returns the items.
func ComputeItemTotals(items []domain.LineItem) []domain.LineItem {
	for i := range items {
		items[i].Total = ComputeItemTotal(items[i])
	}
	return items
}

// ComputeTotal derives the stored document total. Item totals must already be
// set (see ComputeItemTotals). Discount is a flat currency amount subtracted
// before tax; the result is not floored at zero. Tax applies only when both
// includeTax is set and taxRate is non-zero.
func ComputeTotal(items []domain.LineItem, discount decimal.Decimal, includeTax bool, taxRate decimal.Decimal) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}

	total := subtotal.Sub(discount)
	if includeTax && !taxRate.IsZero() {
		total = total.Add(total.Mul(taxRate).Div(decimal.NewFromInt(100)))
	}
	return total
}

// Totals is the display breakdown shown on rendered documents.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// RenderTotals derives the display totals used on PDFs. Unlike ComputeTotal,
// tax is always derived from the after-discount amount regardless of the
// includeTax flag being recorded; a zero rate simply yields zero tax.
func RenderTotals(items []domain.LineItem, discount decimal.Decimal, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}

	tax := subtotal.Sub(discount).Mul(taxRate).Div(decimal.NewFromInt(100))
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Sub(discount).Add(tax),
	}
}
