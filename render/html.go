// Package render turns a stored document into its printable form: the
// preview markup and the exported PDF. It only formats already-derived
// values; totals are never recomputed here.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"bizdocs/models"
	"bizdocs/utils"
)

//go:embed templates/document.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/document.html"))

type itemRow struct {
	Index       int
	Description string
	Quantity    string
	UnitPrice   string
	TaxPercent  string
	Amount      string
}

type pageData struct {
	Title       string
	Number      string
	Status      string
	StatusColor string
	Company     *models.CompanyProfile
	DateLines   []models.LabelValue
	DetailLines []models.LabelValue

	CustomerName    string
	CustomerAddress string
	CustomerEmail   string
	CustomerPhone   string
	CustomerGST     string

	Rows []itemRow

	Currency    string
	Subtotal    string
	TaxTotal    string
	HasDiscount bool
	Discount    string
	Total       string
	ShowAdvance bool
	Advance     string
	Balance     string
	TotalWords  string

	Notes  string
	Terms  string
	Footer string
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildHTML renders the full printable page for a document. The company
// snapshot on the document wins over the live profile so historical
// documents print with the issuer details in effect when they were saved.
func BuildHTML(view *models.DocumentView, live *models.CompanyProfile) (string, error) {
	if view == nil || view.Doc == nil {
		return "", fmt.Errorf("render: document view is incomplete")
	}
	doc := view.Doc

	company := doc.Company
	if company == nil {
		company = live
	}
	if company == nil {
		company = models.DefaultCompanyProfile()
	}

	footer := company.Footer
	if footer == "" {
		footer = "Thank you for your business!"
	}

	data := pageData{
		Title:       view.Title,
		Number:      view.Number,
		Status:      view.Status,
		StatusColor: StatusColor(view.Status),
		Company:     company,
		DateLines:   view.DateLines,
		DetailLines: view.DetailLines,

		CustomerName:    doc.CustomerName,
		CustomerAddress: doc.CustomerAddress,
		CustomerEmail:   doc.CustomerEmail,
		CustomerPhone:   doc.CustomerPhone,
		CustomerGST:     doc.CustomerGST,

		Currency:    company.Currency,
		Subtotal:    money(doc.Subtotal),
		TaxTotal:    money(doc.TaxTotal),
		HasDiscount: doc.Discount > 0,
		Discount:    money(doc.Discount),
		Total:       money(doc.Total),
		ShowAdvance: view.ShowAdvance,
		Advance:     money(view.Advance),
		Balance:     money(view.Balance),
		TotalWords:  utils.NumberToCurrencyWords(doc.Total),

		Notes:  doc.Notes,
		Terms:  doc.Terms,
		Footer: footer,
	}

	for i, it := range doc.Items {
		data.Rows = append(data.Rows, itemRow{
			Index:       i + 1,
			Description: it.Description,
			Quantity:    quantity(it.Quantity),
			UnitPrice:   money(it.UnitPrice),
			TaxPercent:  quantity(it.TaxPercent),
			Amount:      money(it.Amount),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
