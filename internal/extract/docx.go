package extract

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// DOCX is a zip archive; all body text lives in word/document.xml. The
// wordprocessingml namespace is stripped before unmarshaling so the struct
// tags can match bare element names.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text []string `xml:"t"`
}

type docxTable struct {
	Rows []docxTableRow `xml:"tr"`
}

type docxTableRow struct {
	Cells []docxTableCell `xml:"tc"`
}

type docxTableCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

// extractDOCX extracts paragraph text (skipping empty paragraphs) followed by
// table content serialized as pipe-joined cell text per row.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open DOCX archive", Cause: err}
	}
	defer func() { _ = zr.Close() }()

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", &ExtractionError{Path: path, Message: "failed to open document.xml", Cause: err}
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", &ExtractionError{Path: path, Message: "failed to read document.xml", Cause: err}
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", &ExtractionError{Path: path, Message: "no document.xml found in DOCX"}
	}

	var doc docxDocument
	if err := xml.Unmarshal(stripNamespaces(docXML), &doc); err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to parse document.xml", Cause: err}
	}

	var sb strings.Builder
	for _, para := range doc.Body.Paragraphs {
		text := paragraphText(para)
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				var cellText []string
				for _, para := range cell.Paragraphs {
					if text := paragraphText(para); text != "" {
						cellText = append(cellText, text)
					}
				}
				if len(cellText) > 0 {
					cells = append(cells, strings.Join(cellText, " "))
				}
			}
			if len(cells) > 0 {
				sb.WriteString(strings.Join(cells, " | "))
				sb.WriteString("\n")
			}
		}
	}

	return sb.String(), nil
}

func paragraphText(para docxParagraph) string {
	var sb strings.Builder
	for _, run := range para.Runs {
		for _, t := range run.Text {
			sb.WriteString(t)
		}
	}
	return strings.TrimSpace(sb.String())
}

// stripNamespaces rewrites w:p style element names to bare names.
func stripNamespaces(content []byte) []byte {
	s := string(content)
	s = strings.ReplaceAll(s, "<w:", "<")
	s = strings.ReplaceAll(s, "</w:", "</")
	return []byte(s)
}
