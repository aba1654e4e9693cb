package extract

import "fmt"

// ExtractionError wraps a failure to read or parse an input file.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// EmptyContentError indicates a file yielded no extractable text, typically
// an empty, corrupt, or image-only document.
type EmptyContentError struct {
	Path string
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("no content could be extracted from %s", e.Path)
}

// InvalidFileError indicates the input file is missing, unreadable, or of an
// unsupported type.
type InvalidFileError struct {
	Path   string
	Reason string
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("invalid file %s: %s", e.Path, e.Reason)
}
