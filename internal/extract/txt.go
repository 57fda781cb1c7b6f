package extract

import (
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// extractTXT reads a plain-text file. UTF-8 is attempted first; if the bytes
// are not valid UTF-8 the content is decoded as ISO-8859-1 instead, which
// never fails on any byte sequence.
func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read text file", Cause: err}
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to decode text file", Cause: err}
	}
	return string(decoded), nil
}
