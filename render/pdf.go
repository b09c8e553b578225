package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"bizdocs/models"
)

// ExportFileName follows the {documentType}_{documentNumber}_{isoDate}.pdf
// convention for exported files.
func ExportFileName(t models.DocType, number string, exportedAt time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf", t, number, exportedAt.Format("2006-01-02"))
}

// GeneratePDF renders the document page with headless Chrome and returns
// the A4 PDF bytes. The caller decides where the bytes go; no file is
// written here.
func GeneratePDF(view *models.DocumentView, live *models.CompanyProfile) ([]byte, error) {
	html, err := BuildHTML(view, live)
	if err != nil {
		return nil, err
	}

	// Chrome wants a URL, so stage the page in a temp file.
	tmpHTML := filepath.Join(os.TempDir(), "document_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(html), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
