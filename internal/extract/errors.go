package extract

import "fmt"

// UnsupportedFormatError is returned for a file extension outside the
// supported set. It is raised before any I/O is attempted.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (supported: pdf, docx, txt)", e.Extension)
}

// ExtractionError represents an I/O or decode failure from the underlying
// reader. It is fatal for the parse call; there is no partial-text recovery.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
