package models

// LabelValue is one labeled line on the printed page.
type LabelValue struct {
	Label string
	Value string
}

// DocumentView is the render-ready form of a document. The renderer only
// formats it; every monetary field arrives already derived.
type DocumentView struct {
	Type   DocType
	Title  string
	Number string
	Status string

	// DateLines go under the number, right-aligned: primary date plus the
	// type-specific second date(s).
	DateLines []LabelValue

	// DetailLines are extra type-specific facts (vehicle, project name,
	// transporter) shown with the recipient block.
	DetailLines []LabelValue

	Doc *DocumentBase

	// Advance/Balance render only for proforma and project-order documents.
	ShowAdvance bool
	Advance     float64
	Balance     float64
}

func newView(t DocType, d *DocumentBase) *DocumentView {
	return &DocumentView{
		Type:   t,
		Title:  t.Title(),
		Number: d.Number,
		Status: d.Status,
		Doc:    d,
	}
}

func (v *DocumentView) addDate(label, value string) {
	if value != "" {
		v.DateLines = append(v.DateLines, LabelValue{Label: label, Value: value})
	}
}

func (v *DocumentView) addDetail(label, value string) {
	if value != "" {
		v.DetailLines = append(v.DetailLines, LabelValue{Label: label, Value: value})
	}
}
