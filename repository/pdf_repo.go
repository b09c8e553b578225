package repository

import (
	"fmt"

	"bizdocs/models"
)

// PDFRepository gathers everything the renderer needs for one export.
type PDFRepository struct {
	Set         *DocumentSet
	CompanyRepo CompanyRepository
}

func NewPDFRepository(set *DocumentSet, companyRepo CompanyRepository) *PDFRepository {
	return &PDFRepository{Set: set, CompanyRepo: companyRepo}
}

// GetDocumentView fetches a document by type tag and id and builds its
// render-ready view.
func (r *PDFRepository) GetDocumentView(t models.DocType, id int64) (*models.DocumentView, error) {
	switch t {
	case models.DocTypeInvoice:
		d, err := r.Set.Invoices.Get(id)
		if err != nil {
			return nil, err
		}
		return d.View(), nil
	case models.DocTypeQuotation:
		d, err := r.Set.Quotations.Get(id)
		if err != nil {
			return nil, err
		}
		return d.View(), nil
	case models.DocTypeProject:
		d, err := r.Set.Projects.Get(id)
		if err != nil {
			return nil, err
		}
		return d.View(), nil
	case models.DocTypeChallan:
		d, err := r.Set.Challans.Get(id)
		if err != nil {
			return nil, err
		}
		return d.View(), nil
	case models.DocTypeProforma:
		d, err := r.Set.Proformas.Get(id)
		if err != nil {
			return nil, err
		}
		return d.View(), nil
	}
	return nil, fmt.Errorf("unknown document type %q", t)
}

// GetCompanyForPDF fetches the live profile used when a stored document
// carries no snapshot.
func (r *PDFRepository) GetCompanyForPDF() (*models.CompanyProfile, error) {
	return r.CompanyRepo.GetCompany()
}
