package render

import (
	"strings"
	"testing"
	"time"

	"bizdocs/models"
	"bizdocs/totals"
)

func sampleInvoiceView() *models.DocumentView {
	inv := &models.Invoice{
		DocumentBase: models.DocumentBase{
			Number:       "INV-2026-08-042",
			Date:         "2026-08-29",
			CustomerName: "Acme Traders",
			CustomerGST:  "27AAAAA0000A1Z5",
			Items: []totals.LineItem{
				{ID: "li-1", Description: "Widget", Quantity: 2, UnitPrice: 100, TaxPercent: 18, Amount: 200},
			},
			Subtotal: 200,
			TaxTotal: 36,
			Total:    236,
			Status:   "sent",
			Notes:    "Handle with care",
		},
		DueDate: "2026-09-28",
	}
	return inv.View()
}

func TestBuildHTMLContainsDocumentFacts(t *testing.T) {
	html, err := BuildHTML(sampleInvoiceView(), models.DefaultCompanyProfile())
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}

	for _, want := range []string{
		"TAX INVOICE",
		"INV-2026-08-042",
		"Acme Traders",
		"27AAAAA0000A1Z5",
		"Widget",
		"236.00",
		"Due Date",
		"2026-09-28",
		"Handle with care",
		"Two Hundred Thirty Six Rupees Only",
		"Thank you for your business!",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestBuildHTMLOmitsEmptySections(t *testing.T) {
	v := sampleInvoiceView()
	v.Doc.Notes = ""
	v.Doc.CustomerGST = ""
	v.Doc.Discount = 0

	html, err := BuildHTML(v, models.DefaultCompanyProfile())
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if strings.Contains(html, "Notes") {
		t.Error("Notes section rendered for empty notes")
	}
	if strings.Contains(html, "GST:") {
		t.Error("GST line rendered for empty customer GST")
	}
	if strings.Contains(html, "Discount") {
		t.Error("Discount row rendered for zero discount")
	}
}

func TestBuildHTMLSnapshotWinsOverLiveProfile(t *testing.T) {
	v := sampleInvoiceView()
	snap := models.DefaultCompanyProfile()
	snap.Name = "Original Issuer Ltd"
	v.Doc.Company = snap

	live := models.DefaultCompanyProfile()
	live.Name = "Renamed Issuer Ltd"

	html, err := BuildHTML(v, live)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if !strings.Contains(html, "Original Issuer Ltd") {
		t.Error("snapshot company name not rendered")
	}
	if strings.Contains(html, "Renamed Issuer Ltd") {
		t.Error("live profile leaked into a snapshotted document")
	}
}

func TestBuildHTMLShowsAdvanceForProforma(t *testing.T) {
	p := &models.Proforma{
		DocumentBase: models.DocumentBase{
			Number:       "PI-2026-08-001",
			Date:         "2026-08-29",
			CustomerName: "Acme Traders",
			Items: []totals.LineItem{
				{ID: "li-1", Description: "Widget", Quantity: 2, UnitPrice: 100, TaxPercent: 18, Amount: 200},
			},
			Subtotal: 200,
			TaxTotal: 36,
			Total:    236,
			Status:   "draft",
		},
		ValidUntil: "2026-09-28",
		Advance:    118,
		Balance:    118,
	}

	html, err := BuildHTML(p.View(), models.DefaultCompanyProfile())
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if !strings.Contains(html, "Advance") || !strings.Contains(html, "Balance") {
		t.Error("advance/balance rows missing from proforma page")
	}
	if !strings.Contains(html, "118.00") {
		t.Error("balance amount missing")
	}
}

func TestBuildHTMLNilView(t *testing.T) {
	if _, err := BuildHTML(nil, nil); err == nil {
		t.Error("BuildHTML(nil) = nil error")
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"paid", "#4caf50"},
		{"delivered", "#4caf50"},
		{"sent", "#2196f3"},
		{"in-transit", "#2196f3"},
		{"pending", "#ff9800"},
		{"overdue", "#f44336"},
		{"draft", "#9e9e9e"},
		{"no-such-status", "#9e9e9e"},
	}
	for _, tc := range tests {
		if got := StatusColor(tc.status); got != tc.want {
			t.Errorf("StatusColor(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestExportFileName(t *testing.T) {
	exportedAt := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	got := ExportFileName(models.DocTypeInvoice, "INV-2026-08-042", exportedAt)
	if got != "invoice_INV-2026-08-042_2026-08-29.pdf" {
		t.Errorf("ExportFileName = %q", got)
	}

	got = ExportFileName(models.DocTypeChallan, "CHL-2026-08-007", exportedAt)
	if got != "challan_CHL-2026-08-007_2026-08-29.pdf" {
		t.Errorf("ExportFileName = %q", got)
	}
}
