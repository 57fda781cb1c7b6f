// Package extract converts resume documents (PDF, DOCX, plain text) into a
// linear sequence of text lines shared by all downstream extraction stages.
package extract

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

// Supported formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// DetectFormat maps a file extension to a supported format. Unknown
// extensions fail with UnsupportedFormatError before any I/O happens.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt":
		return FormatTXT, nil
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

// Text extracts the full text content of the file at path, dispatching on the
// detected format. Line breaks are preserved for the segmenter.
func Text(path string) (string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatPDF:
		return extractPDF(path)
	case FormatDOCX:
		return extractDOCX(path)
	default:
		return extractTXT(path)
	}
}
