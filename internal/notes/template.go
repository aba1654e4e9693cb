package notes

import (
	_ "embed"
	"os"
	"strings"

	"smartnotes/internal/logger"
)

// Placeholder markers the template must carry.
const (
	ContentPlaceholder = "<!-- AI GENERATED CONTENT GOES HERE -->"
	NavPlaceholder     = "<!-- NAV ITEMS GENERATED HERE -->"
)

//go:embed smart_template.html
var defaultTemplate string

// LoadTemplate reads the HTML skeleton from path, or returns the embedded
// default when path is empty. Missing placeholder markers are logged but not
// fatal, matching the forgiving behavior of the renderer.
func LoadTemplate(path string) (string, error) {
	tpl := defaultTemplate
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		tpl = string(b)
	}

	log := logger.Get()
	if !strings.Contains(tpl, ContentPlaceholder) {
		log.Warn().Str("template", path).Msg("template missing content placeholder; output may be empty")
	}
	if !strings.Contains(tpl, NavPlaceholder) {
		log.Warn().Str("template", path).Msg("template missing nav placeholder; navigation may be empty")
	}
	return tpl, nil
}

// RenderDocument substitutes the tabbed content and navigation markup into
// the template skeleton.
func RenderDocument(template string, sections []Section) string {
	nav, content := RenderTabs(sections)
	out := strings.ReplaceAll(template, ContentPlaceholder, content)
	out = strings.ReplaceAll(out, NavPlaceholder, nav)
	return out
}
