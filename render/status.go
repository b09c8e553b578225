package render

// Status badge colors, matching the preview styling. Unrecognized statuses
// fall back to neutral gray.
const (
	colorGreen  = "#4caf50"
	colorBlue   = "#2196f3"
	colorOrange = "#ff9800"
	colorRed    = "#f44336"
	colorGray   = "#9e9e9e"
)

var statusColors = map[string]string{
	"paid":        colorGreen,
	"accepted":    colorGreen,
	"delivered":   colorGreen,
	"completed":   colorGreen,
	"approved":    colorGreen,
	"sent":        colorBlue,
	"in-transit":  colorBlue,
	"in-progress": colorBlue,
	"pending":     colorOrange,
	"expired":     colorOrange,
	"overdue":     colorRed,
	"rejected":    colorRed,
	"cancelled":   colorGray,
	"draft":       colorGray,
}

// StatusColor returns the badge fill for a document status.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return colorGray
}
