package models

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"bizdocs/totals"
)

type DocType string

const (
	DocTypeInvoice   DocType = "invoice"
	DocTypeQuotation DocType = "quotation"
	DocTypeProject   DocType = "project"
	DocTypeChallan   DocType = "challan"
	DocTypeProforma  DocType = "proforma"
)

// Title is the heading printed on the document.
func (t DocType) Title() string {
	switch t {
	case DocTypeInvoice:
		return "TAX INVOICE"
	case DocTypeQuotation:
		return "QUOTATION"
	case DocTypeProject:
		return "PROJECT ORDER"
	case DocTypeChallan:
		return "E-CHALLAN"
	case DocTypeProforma:
		return "PROFORMA INVOICE"
	}
	return string(t)
}

// StorageKey is the blob-store key holding this type's record array.
func (t DocType) StorageKey() string {
	switch t {
	case DocTypeInvoice:
		return "invoices"
	case DocTypeQuotation:
		return "quotations"
	case DocTypeProject:
		return "projects"
	case DocTypeChallan:
		return "challans"
	case DocTypeProforma:
		return "proformas"
	}
	return string(t)
}

// ActivityPrefix tags cross-type feed ids, e.g. "inv-1712".
// These synthesized ids are never persisted.
func (t DocType) ActivityPrefix() string {
	switch t {
	case DocTypeInvoice:
		return "inv"
	case DocTypeQuotation:
		return "qtn"
	case DocTypeProject:
		return "po"
	case DocTypeChallan:
		return "chl"
	case DocTypeProforma:
		return "pi"
	}
	return string(t)
}

// Record is what the generic document store needs from a stored row.
type Record interface {
	RecordID() int64
	SetRecordID(int64)
	RecordCreatedAt() time.Time
	SetRecordCreatedAt(time.Time)
}

// Document is the contract every document variant fulfills.
type Document interface {
	Record
	DocType() DocType
	// Recompute derives item amounts and the document totals from the
	// current line items. It never fails.
	Recompute()
	// Validate reports the first save-blocking problem, or nil.
	Validate() error
	// ApplyCompany snapshots the issuer profile onto the document and
	// fills in number/terms/status defaults for new drafts.
	ApplyCompany(c *CompanyProfile)
	// View builds the render-ready representation.
	View() *DocumentView
}

// DocumentBase is the shape shared by all five document types.
type DocumentBase struct {
	ID              int64             `json:"id"`
	Number          string            `json:"documentNumber" validate:"required"`
	Date            string            `json:"date" validate:"required"`
	CustomerName    string            `json:"customerName" validate:"required"`
	CustomerEmail   string            `json:"customerEmail,omitempty"`
	CustomerPhone   string            `json:"customerPhone,omitempty"`
	CustomerAddress string            `json:"customerAddress,omitempty"`
	CustomerGST     string            `json:"customerGST,omitempty"`
	Items           []totals.LineItem `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	TaxTotal        float64           `json:"taxTotal"`
	Discount        float64           `json:"discount"`
	Total           float64           `json:"total"`
	Status          string            `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	Terms           string            `json:"terms,omitempty"`
	Company         *CompanyProfile   `json:"company,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func (d *DocumentBase) RecordID() int64 { return d.ID }

func (d *DocumentBase) SetRecordID(id int64) { d.ID = id }

func (d *DocumentBase) RecordCreatedAt() time.Time { return d.CreatedAt }

func (d *DocumentBase) SetRecordCreatedAt(t time.Time) { d.CreatedAt = t }

// normalizeItems gives fresh items an id and rederives every amount.
func (d *DocumentBase) normalizeItems() {
	for i := range d.Items {
		if d.Items[i].ID == "" {
			d.Items[i].ID = uuid.NewString()
		}
		d.Items[i] = totals.RecomputeItem(d.Items[i])
	}
}

func (d *DocumentBase) applyTotals(r totals.Result) {
	d.Subtotal = r.Subtotal
	d.TaxTotal = r.TaxTotal
	d.Total = r.Total
}

// snapshotCompany copies the live profile onto the document so historical
// records keep the issuer details in effect when they were saved.
func (d *DocumentBase) snapshotCompany(c *CompanyProfile, prefix string) {
	if c == nil {
		return
	}
	snap := *c
	d.Company = &snap
	if d.Number == "" {
		d.Number = GenerateNumber(prefix)
	}
	if d.Terms == "" {
		d.Terms = c.Terms
	}
}

func (d *DocumentBase) validateItems() error {
	if len(d.Items) == 0 {
		return &ValidationError{Field: "items", Message: "Please add at least one item"}
	}
	for _, it := range d.Items {
		if !hasText(it.Description) {
			return &ValidationError{Field: "items", Message: "Please enter description for all items"}
		}
	}
	return nil
}

// GenerateNumber builds a human-readable document number like
// INV-2026-08-042. The random suffix is not checked for collisions.
func GenerateNumber(prefix string) string {
	now := time.Now()
	return fmt.Sprintf("%s-%d-%02d-%03d", prefix, now.Year(), int(now.Month()), rand.IntN(1000))
}
