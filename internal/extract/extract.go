package extract

import (
	"os"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// SupportedExtensions lists file extensions this package can handle.
var SupportedExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
}

// IsSupported checks whether a filename has an extractable extension.
func IsSupported(path string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Extract reads a PDF or plain-text file and returns its text content.
func Extract(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &InvalidFileError{Path: path, Reason: "file does not exist"}
	}
	if info.IsDir() {
		return "", &InvalidFileError{Path: path, Reason: "path is not a file"}
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDF(path)
	case ".txt":
		text, err = extractText(path)
	default:
		return "", &InvalidFileError{Path: path, Reason: "unsupported extension, use .pdf or .txt"}
	}
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &EmptyContentError{Path: path}
	}
	return text, nil
}

func extractPDF(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func extractText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SafeOutputName derives a collision-safe HTML output filename from an input
// path, e.g. "Calc Notes.pdf" -> "Calc_Notes_smart_notes.html".
func SafeOutputName(inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	base = sanitizeFilename(base)
	if base == "" {
		base = "notes"
	}
	return base + "_smart_notes.html"
}

func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
