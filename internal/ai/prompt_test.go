package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectContentType(t *testing.T) {
	edu := "Chapter 3 covers the mean value theorem with a full proof and worked examples."
	assert.Equal(t, "educational", DetectContentType(edu))

	general := "Quarterly revenue grew across all regions, driven by strong product demand."
	assert.Equal(t, "general", DetectContentType(general))

	// one keyword alone is not enough
	assert.Equal(t, "general", DetectContentType("see the example below"))
	assert.Equal(t, "general", DetectContentType(""))
}

func TestBuildSectionPrompt_EmbedsChunkAndRules(t *testing.T) {
	p := BuildSectionPrompt("the source material", "educational")
	assert.Contains(t, p, "the source material")
	assert.Contains(t, p, "definition-box")
	assert.Contains(t, p, "theorem-box")
	assert.Contains(t, p, "example-box")
	assert.Contains(t, p, "math and science explainer")

	p = BuildSectionPrompt("x", "general")
	assert.Contains(t, p, "technical writer")
}

func TestBuildDocumentPrompt_IncludesReference(t *testing.T) {
	p := BuildDocumentPrompt("general", "<body>SKELETON</body></html>")
	assert.Contains(t, p, "content-viewport")
	assert.Contains(t, p, "bottom-nav")
	assert.Contains(t, p, "switchTab")
	assert.Contains(t, p, "SKELETON")

	p = BuildDocumentPrompt("general", "")
	assert.NotContains(t, p, "REFERENCE SKELETON")
}

func TestBuildValidationPrompt_StatesExpectedTabs(t *testing.T) {
	p := BuildValidationPrompt("<html>...</html>", 5)
	assert.Contains(t, p, "at least 5 tab-section")
	assert.Contains(t, p, `"recommendation"`)
}

func TestTemplateReference_ExtractsBodyToEnd(t *testing.T) {
	tpl := "<html><head><style>lots of css</style></head><body><div id=\"content-viewport\"></div></body></html>"
	ref := TemplateReference(tpl)
	assert.True(t, strings.HasPrefix(ref, "<body"))
	assert.True(t, strings.HasSuffix(ref, "</html>"))
	assert.NotContains(t, ref, "lots of css")
}

func TestTemplateReference_CapsLength(t *testing.T) {
	tpl := "<body>" + strings.Repeat("x", 10000) + "</body></html>"
	assert.LessOrEqual(t, len(TemplateReference(tpl)), 4000)
}
