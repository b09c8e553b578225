package models

import "bizdocs/totals"

// Project order statuses.
const (
	ProjectStatusDraft      = "draft"
	ProjectStatusPending    = "pending"
	ProjectStatusApproved   = "approved"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

type ProjectOrder struct {
	DocumentBase
	ProjectName string  `json:"projectName" validate:"required"`
	Category    string  `json:"category,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     string  `json:"endDate" validate:"required"`
	Advance     float64 `json:"advance"`
	Balance     float64 `json:"balance"`
}

func (d *ProjectOrder) DocType() DocType { return DocTypeProject }

func (d *ProjectOrder) Recompute() {
	d.normalizeItems()
	r := totals.ComputeWithAdvance(d.Items, d.Discount, d.Advance)
	d.applyTotals(r)
	d.Balance = r.Balance
}

func (d *ProjectOrder) Validate() error {
	if err := checkRequired(d); err != nil {
		return err
	}
	return d.validateItems()
}

func (d *ProjectOrder) ApplyCompany(c *CompanyProfile) {
	d.snapshotCompany(c, c.PrefixFor(DocTypeProject))
	if d.Status == "" {
		d.Status = ProjectStatusDraft
	}
}

func (d *ProjectOrder) View() *DocumentView {
	v := newView(DocTypeProject, &d.DocumentBase)
	v.addDate("Order Date", d.Date)
	v.addDate("Start Date", d.StartDate)
	v.addDate("End Date", d.EndDate)
	v.addDetail("Project", d.ProjectName)
	v.addDetail("Category", d.Category)
	v.addDetail("Priority", d.Priority)
	v.ShowAdvance = true
	v.Advance = d.Advance
	v.Balance = d.Balance
	return v
}
