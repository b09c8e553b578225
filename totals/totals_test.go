package totals

import (
	"math"
	"testing"
)

func TestRecomputeItem_AmountFollowsQuantityAndPrice(t *testing.T) {
	it := LineItem{Description: "Widget", Quantity: 2, UnitPrice: 100, TaxPercent: 18}

	it = RecomputeItem(it)
	if it.Amount != 200 {
		t.Errorf("Amount = %v, want 200", it.Amount)
	}

	it.Quantity = 3
	it = RecomputeItem(it)
	if it.Amount != 300 {
		t.Errorf("Amount after quantity edit = %v, want 300", it.Amount)
	}

	it.UnitPrice = 50
	it = RecomputeItem(it)
	if it.Amount != 150 {
		t.Errorf("Amount after price edit = %v, want 150", it.Amount)
	}
}

func TestRecomputeItem_NegativeInputsPreserved(t *testing.T) {
	it := RecomputeItem(LineItem{Quantity: -2, UnitPrice: 100})
	if it.Quantity != -2 {
		t.Errorf("Quantity = %v, want -2 (no clamping)", it.Quantity)
	}
	if it.Amount != -200 {
		t.Errorf("Amount = %v, want -200", it.Amount)
	}
}

func TestApplyItemChange(t *testing.T) {
	it := LineItem{Quantity: 1, UnitPrice: 10}

	it = ApplyItemChange(it, ItemQuantity, "4")
	if it.Quantity != 4 || it.Amount != 40 {
		t.Errorf("after quantity change got qty=%v amount=%v, want 4/40", it.Quantity, it.Amount)
	}

	it = ApplyItemChange(it, ItemUnitPrice, "2.5")
	if it.Amount != 10 {
		t.Errorf("after price change Amount = %v, want 10", it.Amount)
	}

	it = ApplyItemChange(it, ItemDescription, "Consulting")
	if it.Description != "Consulting" {
		t.Errorf("Description = %q, want Consulting", it.Description)
	}
	if it.Amount != 10 {
		t.Errorf("description edit changed Amount to %v", it.Amount)
	}

	// Garbage numeric input counts as zero, never an error.
	it = ApplyItemChange(it, ItemQuantity, "not-a-number")
	if it.Quantity != 0 || it.Amount != 0 {
		t.Errorf("garbage input got qty=%v amount=%v, want 0/0", it.Quantity, it.Amount)
	}
}

func TestCompute_InvoiceScenario(t *testing.T) {
	items := []LineItem{
		RecomputeItem(LineItem{Description: "Widget", Quantity: 2, UnitPrice: 100, TaxPercent: 18}),
	}

	r := Compute(items, 0)
	if r.Subtotal != 200 {
		t.Errorf("Subtotal = %v, want 200", r.Subtotal)
	}
	if r.TaxTotal != 36 {
		t.Errorf("TaxTotal = %v, want 36", r.TaxTotal)
	}
	if r.Total != 236 {
		t.Errorf("Total = %v, want 236", r.Total)
	}
}

func TestComputeWithAdvance_ProformaScenario(t *testing.T) {
	items := []LineItem{
		RecomputeItem(LineItem{Description: "Widget", Quantity: 2, UnitPrice: 100, TaxPercent: 18}),
	}

	r := ComputeWithAdvance(items, 0, 118)
	if r.Total != 236 {
		t.Errorf("Total = %v, want 236", r.Total)
	}
	if r.Balance != 118 {
		t.Errorf("Balance = %v, want 118", r.Balance)
	}
}

func TestComputeWithAdvance_BalanceFloorsAtZero(t *testing.T) {
	items := []LineItem{{Amount: 100}}

	r := ComputeWithAdvance(items, 0, 500)
	if r.Balance != 0 {
		t.Errorf("Balance = %v, want 0 when advance exceeds total", r.Balance)
	}
}

func TestCompute_EmptyItems(t *testing.T) {
	r := Compute(nil, 0)
	if r.Subtotal != 0 || r.TaxTotal != 0 || r.Total != 0 {
		t.Errorf("empty list got %+v, want all zeros", r)
	}

	r = Compute(nil, 50)
	if r.Total != -50 {
		t.Errorf("Total = %v, want -50 (discount applies even with no items)", r.Total)
	}
}

func TestCompute_DiscountMayGoNegative(t *testing.T) {
	items := []LineItem{{Amount: 100, TaxPercent: 10}}

	r := Compute(items, 500)
	if r.Total != -390 {
		t.Errorf("Total = %v, want -390 (discount is not clamped)", r.Total)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	items := []LineItem{
		{Amount: 199.99, TaxPercent: 18},
		{Amount: 0.01, TaxPercent: 5},
		{Amount: 42, TaxPercent: 0},
	}

	first := Compute(items, 7.5)
	second := Compute(items, 7.5)
	if first != second {
		t.Errorf("recompute not idempotent: %+v vs %+v", first, second)
	}
}

func TestCompute_NeverNaN(t *testing.T) {
	items := []LineItem{
		{Amount: math.NaN(), TaxPercent: 18},
		{Amount: math.Inf(1), TaxPercent: math.NaN()},
		{Amount: 100, TaxPercent: math.Inf(-1)},
	}

	for _, r := range []Result{
		Compute(items, math.NaN()),
		ComputeWithAdvance(items, math.Inf(1), math.NaN()),
	} {
		for name, v := range map[string]float64{
			"Subtotal": r.Subtotal, "TaxTotal": r.TaxTotal, "Total": r.Total, "Balance": r.Balance,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s = %v, want a plain number", name, v)
			}
		}
	}
}

func TestRecomputeItem_NaNInputsYieldZero(t *testing.T) {
	it := RecomputeItem(LineItem{Quantity: math.NaN(), UnitPrice: math.Inf(1)})
	if it.Amount != 0 {
		t.Errorf("Amount = %v, want 0", it.Amount)
	}
	if it.Quantity != 0 || it.UnitPrice != 0 {
		t.Errorf("coerced fields = %v/%v, want 0/0", it.Quantity, it.UnitPrice)
	}
}
