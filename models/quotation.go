package models

import "bizdocs/totals"

// Quotation statuses.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
	QuotationStatusExpired  = "expired"
)

type Quotation struct {
	DocumentBase
	ValidUntil    string `json:"validUntil" validate:"required"`
	PaymentTerms  string `json:"paymentTerms,omitempty"`
	DeliveryTerms string `json:"deliveryTerms,omitempty"`
}

func (d *Quotation) DocType() DocType { return DocTypeQuotation }

func (d *Quotation) Recompute() {
	d.normalizeItems()
	d.applyTotals(totals.Compute(d.Items, d.Discount))
}

func (d *Quotation) Validate() error {
	if err := checkRequired(d); err != nil {
		return err
	}
	return d.validateItems()
}

func (d *Quotation) ApplyCompany(c *CompanyProfile) {
	d.snapshotCompany(c, c.PrefixFor(DocTypeQuotation))
	if d.Status == "" {
		d.Status = QuotationStatusDraft
	}
}

func (d *Quotation) View() *DocumentView {
	v := newView(DocTypeQuotation, &d.DocumentBase)
	v.addDate("Quotation Date", d.Date)
	v.addDate("Valid Until", d.ValidUntil)
	v.addDetail("Payment Terms", d.PaymentTerms)
	v.addDetail("Delivery Terms", d.DeliveryTerms)
	return v
}
