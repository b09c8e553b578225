package models

import "bizdocs/totals"

// Proforma invoice statuses.
const (
	ProformaStatusDraft    = "draft"
	ProformaStatusSent     = "sent"
	ProformaStatusAccepted = "accepted"
	ProformaStatusExpired  = "expired"
)

type Proforma struct {
	DocumentBase
	ValidUntil   string  `json:"validUntil" validate:"required"`
	PaymentTerms string  `json:"paymentTerms,omitempty"`
	Advance      float64 `json:"advance"`
	Balance      float64 `json:"balance"`
}

func (d *Proforma) DocType() DocType { return DocTypeProforma }

func (d *Proforma) Recompute() {
	d.normalizeItems()
	r := totals.ComputeWithAdvance(d.Items, d.Discount, d.Advance)
	d.applyTotals(r)
	d.Balance = r.Balance
}

func (d *Proforma) Validate() error {
	if err := checkRequired(d); err != nil {
		return err
	}
	return d.validateItems()
}

func (d *Proforma) ApplyCompany(c *CompanyProfile) {
	d.snapshotCompany(c, c.PrefixFor(DocTypeProforma))
	if d.PaymentTerms == "" {
		d.PaymentTerms = "50% advance, 50% before delivery"
	}
	if d.Status == "" {
		d.Status = ProformaStatusDraft
	}
}

func (d *Proforma) View() *DocumentView {
	v := newView(DocTypeProforma, &d.DocumentBase)
	v.addDate("Proforma Date", d.Date)
	v.addDate("Valid Until", d.ValidUntil)
	v.addDetail("Payment Terms", d.PaymentTerms)
	v.ShowAdvance = true
	v.Advance = d.Advance
	v.Balance = d.Balance
	return v
}
