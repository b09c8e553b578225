package models

import (
	"regexp"
	"testing"

	"bizdocs/totals"
)

func validBase() DocumentBase {
	return DocumentBase{
		Number:       "INV-2026-08-001",
		Date:         "2026-08-29",
		CustomerName: "Acme Traders",
		Items: []totals.LineItem{
			{Description: "Widget", Quantity: 2, UnitPrice: 100, TaxPercent: 18},
		},
	}
}

func TestInvoiceRecompute(t *testing.T) {
	inv := &Invoice{DocumentBase: validBase(), DueDate: "2026-09-28"}
	inv.Recompute()

	if inv.Items[0].Amount != 200 {
		t.Errorf("item amount = %v, want 200", inv.Items[0].Amount)
	}
	if inv.Subtotal != 200 || inv.TaxTotal != 36 || inv.Total != 236 {
		t.Errorf("totals = %v/%v/%v, want 200/36/236", inv.Subtotal, inv.TaxTotal, inv.Total)
	}
	if inv.Items[0].ID == "" {
		t.Error("line item was not assigned an id")
	}
}

func TestProformaRecomputeBalance(t *testing.T) {
	p := &Proforma{DocumentBase: validBase(), ValidUntil: "2026-09-28", Advance: 118}
	p.Recompute()

	if p.Total != 236 {
		t.Errorf("Total = %v, want 236", p.Total)
	}
	if p.Balance != 118 {
		t.Errorf("Balance = %v, want 118", p.Balance)
	}

	p.Advance = 1000
	p.Recompute()
	if p.Balance != 0 {
		t.Errorf("Balance = %v, want 0 when advance exceeds total", p.Balance)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantMsg string
	}{
		{
			name: "missing customer name",
			doc: func() Document {
				b := validBase()
				b.CustomerName = ""
				return &Invoice{DocumentBase: b, DueDate: "2026-09-28"}
			}(),
			wantMsg: "Please enter customer name",
		},
		{
			name:    "missing due date",
			doc:     &Invoice{DocumentBase: validBase()},
			wantMsg: "Please select due date",
		},
		{
			name:    "missing valid until",
			doc:     &Quotation{DocumentBase: validBase()},
			wantMsg: "Please select valid until date",
		},
		{
			name:    "missing vehicle number",
			doc:     &Challan{DocumentBase: validBase()},
			wantMsg: "Please enter vehicle number",
		},
		{
			name: "missing project name",
			doc: &ProjectOrder{
				DocumentBase: validBase(),
				StartDate:    "2026-08-29",
				EndDate:      "2026-09-29",
			},
			wantMsg: "Please enter project name",
		},
		{
			name: "empty item list",
			doc: func() Document {
				b := validBase()
				b.Items = nil
				return &Invoice{DocumentBase: b, DueDate: "2026-09-28"}
			}(),
			wantMsg: "Please add at least one item",
		},
		{
			name: "blank item description",
			doc: func() Document {
				b := validBase()
				b.Items = []totals.LineItem{{Description: "  ", Quantity: 1, UnitPrice: 10}}
				return &Invoice{DocumentBase: b, DueDate: "2026-09-28"}
			}(),
			wantMsg: "Please enter description for all items",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.doc.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestValidatePassesOnCompleteDocuments(t *testing.T) {
	docs := []Document{
		&Invoice{DocumentBase: validBase(), DueDate: "2026-09-28"},
		&Quotation{DocumentBase: validBase(), ValidUntil: "2026-09-28"},
		&Challan{DocumentBase: validBase(), VehicleNumber: "MH-12-AB-1234"},
		&ProjectOrder{DocumentBase: validBase(), ProjectName: "Website", StartDate: "2026-08-29", EndDate: "2026-10-01"},
		&Proforma{DocumentBase: validBase(), ValidUntil: "2026-09-28"},
	}
	for _, d := range docs {
		if err := d.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v, want nil", d.DocType(), err)
		}
	}
}

func TestGenerateNumberFormat(t *testing.T) {
	n := GenerateNumber("INV")
	if ok, _ := regexp.MatchString(`^INV-\d{4}-\d{2}-\d{3}$`, n); !ok {
		t.Errorf("GenerateNumber = %q, want INV-YYYY-MM-NNN", n)
	}
}

func TestApplyCompanySnapshotsProfile(t *testing.T) {
	company := DefaultCompanyProfile()
	company.Name = "Sharma Industries"
	company.Terms = "Net 15"

	inv := &Invoice{DocumentBase: validBase(), DueDate: "2026-09-28"}
	inv.Number = ""
	inv.ApplyCompany(company)

	if inv.Company == nil || inv.Company.Name != "Sharma Industries" {
		t.Fatal("company snapshot missing")
	}
	if inv.Number == "" {
		t.Error("empty number was not generated")
	}
	if inv.Status != InvoiceStatusDraft {
		t.Errorf("Status = %q, want draft default", inv.Status)
	}
	if inv.Terms != "Net 15" {
		t.Errorf("Terms = %q, want company default", inv.Terms)
	}

	// Editing the live profile must not rewrite the snapshot.
	company.Name = "Renamed Ltd"
	if inv.Company.Name != "Sharma Industries" {
		t.Error("snapshot follows live profile, want a copy")
	}
}

func TestChallanApplyCompanyDefaults(t *testing.T) {
	c := &Challan{DocumentBase: validBase(), VehicleNumber: "MH-12-AB-1234"}
	c.ApplyCompany(DefaultCompanyProfile())

	if c.Status != ChallanStatusPending {
		t.Errorf("Status = %q, want pending default", c.Status)
	}
	if c.Type != ChallanTypeOutward {
		t.Errorf("Type = %q, want outward default", c.Type)
	}
}

func TestPrefixFor(t *testing.T) {
	c := DefaultCompanyProfile()
	if got := c.PrefixFor(DocTypeQuotation); got != "QTN" {
		t.Errorf("PrefixFor(quotation) = %q, want QTN", got)
	}

	c.ChallanPrefix = "DC"
	if got := c.PrefixFor(DocTypeChallan); got != "DC" {
		t.Errorf("PrefixFor(challan) = %q, want DC", got)
	}

	c.InvoicePrefix = ""
	if got := c.PrefixFor(DocTypeInvoice); got != "INV" {
		t.Errorf("PrefixFor(invoice) with empty prefix = %q, want INV fallback", got)
	}
}
