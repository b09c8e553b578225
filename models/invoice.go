package models

import "bizdocs/totals"

// Invoice statuses.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	DocumentBase
	DueDate string `json:"dueDate" validate:"required"`
}

func (d *Invoice) DocType() DocType { return DocTypeInvoice }

func (d *Invoice) Recompute() {
	d.normalizeItems()
	d.applyTotals(totals.Compute(d.Items, d.Discount))
}

func (d *Invoice) Validate() error {
	if err := checkRequired(d); err != nil {
		return err
	}
	return d.validateItems()
}

func (d *Invoice) ApplyCompany(c *CompanyProfile) {
	d.snapshotCompany(c, c.PrefixFor(DocTypeInvoice))
	if d.Terms == "" {
		d.Terms = "Payment due within 30 days"
	}
	if d.Status == "" {
		d.Status = InvoiceStatusDraft
	}
}

func (d *Invoice) View() *DocumentView {
	v := newView(DocTypeInvoice, &d.DocumentBase)
	v.addDate("Invoice Date", d.Date)
	v.addDate("Due Date", d.DueDate)
	return v
}
