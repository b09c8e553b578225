package repository

import (
	"github.com/rs/zerolog/log"

	"bizdocs/models"
)

// DocumentSet bundles the five per-type cabinets.
type DocumentSet struct {
	Invoices   *Store[*models.Invoice]
	Quotations *Store[*models.Quotation]
	Projects   *Store[*models.ProjectOrder]
	Challans   *Store[*models.Challan]
	Proformas  *Store[*models.Proforma]
}

func NewDocumentSet(blob BlobRepository) *DocumentSet {
	return &DocumentSet{
		Invoices:   NewStore[*models.Invoice](blob, models.DocTypeInvoice.StorageKey()),
		Quotations: NewStore[*models.Quotation](blob, models.DocTypeQuotation.StorageKey()),
		Projects:   NewStore[*models.ProjectOrder](blob, models.DocTypeProject.StorageKey()),
		Challans:   NewStore[*models.Challan](blob, models.DocTypeChallan.StorageKey()),
		Proformas:  NewStore[*models.Proforma](blob, models.DocTypeProforma.StorageKey()),
	}
}

// FlushAll writes every cabinet out; called on shutdown.
func (s *DocumentSet) FlushAll() {
	type flusher interface{ Flush() error }
	cabinets := map[string]flusher{
		"invoices":   s.Invoices,
		"quotations": s.Quotations,
		"projects":   s.Projects,
		"challans":   s.Challans,
		"proformas":  s.Proformas,
	}
	for key, c := range cabinets {
		if err := c.Flush(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("final flush failed")
		}
	}
}
