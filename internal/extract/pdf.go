package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts text from a PDF page by page. Each page is preceded by
// a marker line so later stages can recognize pagination artifacts.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{
				Path:    path,
				Message: fmt.Sprintf("failed to extract text from page %d", i),
				Cause:   err,
			}
		}

		sb.WriteString(fmt.Sprintf("\n--- PAGE %d ---\n", i))
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
