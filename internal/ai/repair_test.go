package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedDoc = `<!DOCTYPE html>
<html>
<head><title>Notes</title></head>
<body>
<div id="content-viewport">
<div id="tab-1" class="tab-section active"><h2>One</h2><p>first</p></div>
<div id="tab-2" class="tab-section"><h2>Two</h2><p>second</p></div>
</div>
<div class="bottom-nav"><div class="nav-track">
<div class="nav-item active" onclick="switchTab(1, 'One')">One</div>
<div class="nav-item" onclick="switchTab(2, 'Two')">Two</div>
</div></div>
<script>
function switchTab(i, t) {}
function buildTOC() {}
</script>
</body>
</html>`

func TestRepair_WellFormedUnchanged(t *testing.T) {
	assert.Equal(t, wellFormedDoc, Repair(wellFormedDoc))
}

func TestRepair_Idempotent(t *testing.T) {
	cases := map[string]string{
		"bare fragment":  `<div id="content-viewport"><div class="tab-section">a</div><div class="tab-section">b</div>`,
		"truncated tag":  `<html><body><div class="tab-section"><p>text</p><div class="tab-sec`,
		"no navigation":  `<html><body><div id="content-viewport"><div class="tab-section">a</div></div></body></html>`,
		"well formed":    wellFormedDoc,
		"plain sentence": "just some prose with no markup",
	}
	for name, input := range cases {
		once := Repair(input)
		twice := Repair(once)
		assert.Equal(t, once, twice, name)
	}
}

func TestRepair_AlwaysProducesDocumentShell(t *testing.T) {
	out := Repair(`<div class="tab-section">only a fragment</div>`)
	for _, marker := range []string{"<html", "<body", "</body>", "</html>"} {
		assert.Contains(t, out, marker)
	}
}

func TestRepair_StripsTruncatedTrailingTag(t *testing.T) {
	out := Repair(`<html><body><p>kept</p><div class="tab-sec`)
	assert.Contains(t, out, "<p>kept</p>")
	assert.NotContains(t, out, `<div class="tab-sec`)
}

func TestRepair_SynthesizesNavigationPerTab(t *testing.T) {
	doc := `<html><body>
<div id="content-viewport">
<div id="tab-1" class="tab-section">a</div>
<div id="tab-2" class="tab-section">b</div>
<div id="tab-3" class="tab-section">c</div>
</div>
</body></html>`
	out := Repair(doc)
	require.Contains(t, out, "bottom-nav")
	require.Contains(t, out, "nav-track")
	items := strings.Count(out, `class="nav-item`)
	assert.GreaterOrEqual(t, items, 3)
	assert.Contains(t, out, "switchTab(1")
	assert.Contains(t, out, "switchTab(3")
}

func TestRepair_SynthesizesMinimumTwoNavItems(t *testing.T) {
	out := Repair(`<html><body><div id="content-viewport"></div></body></html>`)
	assert.GreaterOrEqual(t, strings.Count(out, `class="nav-item`), 2)
}

func TestRepair_InjectsScripts(t *testing.T) {
	out := Repair(`<html><body><div class="tab-section">a</div></body></html>`)
	assert.Contains(t, out, "function switchTab")
	assert.Contains(t, out, "function buildTOC")
}

func TestValidateStructure(t *testing.T) {
	assert.True(t, ValidateStructure(wellFormedDoc))
	assert.False(t, ValidateStructure("<div>no shell</div>"))
	assert.False(t, ValidateStructure(""))
}
