package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"bizdocs/models"
	"bizdocs/repository"
)

type DashboardHandler struct {
	Set *repository.DocumentSet
}

// ActivityEntry is one row of the cross-type recent-activity feed. Its id
// is synthesized from the type prefix and never persisted.
type ActivityEntry struct {
	ID           string         `json:"id"`
	Type         models.DocType `json:"type"`
	Number       string         `json:"documentNumber"`
	CustomerName string         `json:"customerName"`
	Status       string         `json:"status"`
	Total        float64        `json:"total"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type dashboardOverview struct {
	Counts         map[models.DocType]int     `json:"counts"`
	Totals         map[models.DocType]float64 `json:"totals"`
	RecentActivity []ActivityEntry            `json:"recentActivity"`
}

// Overview aggregates counts, amount totals and the ten newest documents
// across all five stores.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview := dashboardOverview{
		Counts: make(map[models.DocType]int),
		Totals: make(map[models.DocType]float64),
	}

	collect := func(t models.DocType, d *models.DocumentBase) {
		overview.Counts[t]++
		overview.Totals[t] += d.Total
		overview.RecentActivity = append(overview.RecentActivity, ActivityEntry{
			ID:           fmt.Sprintf("%s-%d", t.ActivityPrefix(), d.ID),
			Type:         t,
			Number:       d.Number,
			CustomerName: d.CustomerName,
			Status:       d.Status,
			Total:        d.Total,
			CreatedAt:    d.CreatedAt,
		})
	}

	for _, d := range h.Set.Invoices.List() {
		collect(models.DocTypeInvoice, &d.DocumentBase)
	}
	for _, d := range h.Set.Quotations.List() {
		collect(models.DocTypeQuotation, &d.DocumentBase)
	}
	for _, d := range h.Set.Projects.List() {
		collect(models.DocTypeProject, &d.DocumentBase)
	}
	for _, d := range h.Set.Challans.List() {
		collect(models.DocTypeChallan, &d.DocumentBase)
	}
	for _, d := range h.Set.Proformas.List() {
		collect(models.DocTypeProforma, &d.DocumentBase)
	}

	sort.SliceStable(overview.RecentActivity, func(i, j int) bool {
		return overview.RecentActivity[i].CreatedAt.After(overview.RecentActivity[j].CreatedAt)
	})
	if len(overview.RecentActivity) > 10 {
		overview.RecentActivity = overview.RecentActivity[:10]
	}

	writeJSON(w, http.StatusOK, overview)
}
