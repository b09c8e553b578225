package models

// CompanyProfile is the issuing business's identity, numbering prefixes and
// formatting defaults. A copy is snapshotted into every document at save
// time, so editing the profile never rewrites history.
type CompanyProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GST     string `json:"gst"`
	PAN     string `json:"pan"`
	Logo    string `json:"logo,omitempty"`

	InvoicePrefix   string `json:"invoicePrefix"`
	QuotationPrefix string `json:"quotationPrefix"`
	ProjectPrefix   string `json:"projectPrefix"`
	ChallanPrefix   string `json:"challanPrefix"`
	ProformaPrefix  string `json:"proformaPrefix"`

	Currency string  `json:"currency"`
	TaxRate  float64 `json:"taxRate"`
	Terms    string  `json:"terms"`
	Footer   string  `json:"footer"`
}

// DefaultCompanyProfile is the bootstrap profile used until the user fills
// in their details in settings.
func DefaultCompanyProfile() *CompanyProfile {
	return &CompanyProfile{
		InvoicePrefix:   "INV",
		QuotationPrefix: "QTN",
		ProjectPrefix:   "PO",
		ChallanPrefix:   "CHL",
		ProformaPrefix:  "PI",
		Currency:        "₹",
		TaxRate:         18,
	}
}

// PrefixFor returns the numbering prefix configured for a document type,
// falling back to the built-in default when unset.
func (c *CompanyProfile) PrefixFor(t DocType) string {
	d := DefaultCompanyProfile()
	var prefix, fallback string
	switch t {
	case DocTypeInvoice:
		prefix, fallback = c.InvoicePrefix, d.InvoicePrefix
	case DocTypeQuotation:
		prefix, fallback = c.QuotationPrefix, d.QuotationPrefix
	case DocTypeProject:
		prefix, fallback = c.ProjectPrefix, d.ProjectPrefix
	case DocTypeChallan:
		prefix, fallback = c.ChallanPrefix, d.ChallanPrefix
	case DocTypeProforma:
		prefix, fallback = c.ProformaPrefix, d.ProformaPrefix
	}
	if prefix == "" {
		return fallback
	}
	return prefix
}
