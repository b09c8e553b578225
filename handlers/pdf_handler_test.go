package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"bizdocs/models"
	"bizdocs/repository"
	"bizdocs/totals"
)

func TestRemoveExportedFiles(t *testing.T) {
	blob := newMemBlob()
	set := repository.NewDocumentSet(blob)

	stored := set.Invoices.Add(&models.Invoice{
		DocumentBase: models.DocumentBase{
			Number:       "INV-2026-08-042",
			Date:         "2026-08-29",
			CustomerName: "Acme Traders",
			Items: []totals.LineItem{
				{ID: "li-1", Description: "Widget", Quantity: 2, UnitPrice: 100, TaxPercent: 18, Amount: 200},
			},
		},
		DueDate: "2026-09-28",
	})

	dir := t.TempDir()
	for _, name := range []string{
		"invoice_INV-2026-08-042_2026-08-29.pdf",
		"invoice_INV-2026-08-042_2026-08-30.pdf",
		"invoice_INV-2026-08-099_2026-08-29.pdf",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0644); err != nil {
			t.Fatalf("staging export %s: %v", name, err)
		}
	}

	h := &PDFHandler{
		Repo:     repository.NewPDFRepository(set, repository.NewCompanyRepo(blob)),
		SavePath: dir,
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/invoices/pdf?id="+strconv.FormatInt(stored.ID, 10), nil)
	h.RemoveExports(models.DocTypeInvoice)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("RemoveExports status = %d, body %s", rec.Code, rec.Body.String())
	}

	for _, name := range []string{
		"invoice_INV-2026-08-042_2026-08-29.pdf",
		"invoice_INV-2026-08-042_2026-08-30.pdf",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("export %s still present after removal", name)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "invoice_INV-2026-08-099_2026-08-29.pdf")); err != nil {
		t.Error("export of a different document was removed")
	}
}

func TestRemoveExportsMissingDocument(t *testing.T) {
	blob := newMemBlob()
	h := &PDFHandler{
		Repo:     repository.NewPDFRepository(repository.NewDocumentSet(blob), repository.NewCompanyRepo(blob)),
		SavePath: t.TempDir(),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/invoices/pdf?id=999999", nil)
	h.RemoveExports(models.DocTypeInvoice)(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
