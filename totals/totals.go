// Package totals keeps every document's derived monetary fields consistent
// with its line items. All computation is synchronous and pure; malformed
// input contributes zero instead of failing, so a derived field is always a
// plain number, never NaN or Inf.
package totals

import (
	"math"
	"strconv"
)

// LineItem is one quantity x unit-price charge with its own tax percentage.
// Amount is derived; it is never independently editable.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxPercent  float64 `json:"taxPercent"`
	Amount      float64 `json:"amount"`
}

// Result holds the document-level derived fields. Balance is only
// meaningful for documents that track an advance payment.
type Result struct {
	Subtotal float64 `json:"subtotal"`
	TaxTotal float64 `json:"taxTotal"`
	Total    float64 `json:"total"`
	Balance  float64 `json:"balance"`
}

// ItemField names an editable line-item field for ApplyItemChange.
type ItemField string

const (
	ItemDescription ItemField = "description"
	ItemQuantity    ItemField = "quantity"
	ItemUnitPrice   ItemField = "unitPrice"
	ItemTaxPercent  ItemField = "taxPercent"
)

// sanitize coerces NaN and Inf to zero. Negative values pass through
// unchanged; the engine does not clamp.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseNumber mirrors the forgiving form parsing of the document forms:
// anything that is not a number counts as zero.
func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

// RecomputeItem rederives Amount = Quantity * UnitPrice after coercing the
// numeric fields. It never fails.
func RecomputeItem(it LineItem) LineItem {
	it.Quantity = sanitize(it.Quantity)
	it.UnitPrice = sanitize(it.UnitPrice)
	it.TaxPercent = sanitize(it.TaxPercent)
	it.Amount = it.Quantity * it.UnitPrice
	return it
}

// ApplyItemChange sets one field from raw user input, then rederives the
// amount when quantity or unit price changed.
func ApplyItemChange(it LineItem, field ItemField, raw string) LineItem {
	switch field {
	case ItemDescription:
		it.Description = raw
	case ItemQuantity:
		it.Quantity = parseNumber(raw)
	case ItemUnitPrice:
		it.UnitPrice = parseNumber(raw)
	case ItemTaxPercent:
		it.TaxPercent = parseNumber(raw)
	}
	it.Amount = sanitize(it.Quantity) * sanitize(it.UnitPrice)
	return it
}

// Compute derives subtotal, tax total and total for the full item list.
// Discount is subtracted as-is; the total may go negative when the discount
// exceeds subtotal plus tax.
func Compute(items []LineItem, discount float64) Result {
	var r Result
	for _, it := range items {
		amount := sanitize(it.Amount)
		r.Subtotal += amount
		r.TaxTotal += amount * sanitize(it.TaxPercent) / 100
	}
	r.Total = r.Subtotal + r.TaxTotal - sanitize(discount)
	return r
}

// ComputeWithAdvance is Compute plus the balance due after an advance
// payment. The balance floors at zero.
func ComputeWithAdvance(items []LineItem, discount, advance float64) Result {
	r := Compute(items, discount)
	r.Balance = math.Max(0, r.Total-sanitize(advance))
	return r
}
