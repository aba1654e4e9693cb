package notes

import (
	"os"
	"path/filepath"

	"smartnotes/internal/logger"
)

// GenerateSmartNotes is the deterministic rendering path: chapter splitting,
// regex formatting, and template substitution. It is used directly for the
// standard mode and as the last-resort fallback when the AI path fails.
func GenerateSmartNotes(text, outputPath, templatePath string) error {
	tpl, err := LoadTemplate(templatePath)
	if err != nil {
		return err
	}

	sections := SplitChapters(text)
	final := RenderDocument(tpl, sections)

	if err := WriteArtifact(outputPath, final); err != nil {
		return err
	}
	log := logger.Get()
	log.Info().Int("sections", len(sections)).Str("output", outputPath).Msg("smart format complete")
	return nil
}

// WriteArtifact persists HTML to path, creating parent directories as needed
// and overwriting any existing file.
func WriteArtifact(path, html string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(html), 0o644)
}
