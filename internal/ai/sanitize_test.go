package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML_KeepsWhitelistedTags(t *testing.T) {
	in := `<div class="definition-box"><h3>Term</h3><p>A <strong>bold</strong> claim with <code>x</code>.</p></div>`
	assert.Equal(t, in, SanitizeHTML(in))
}

func TestSanitizeHTML_RemovesScriptBlocks(t *testing.T) {
	out := SanitizeHTML(`<p>safe</p><script>alert('x')</script><p>also safe</p>`)
	assert.Equal(t, "<p>safe</p><p>also safe</p>", out)
}

func TestSanitizeHTML_RemovesStyleBlocks(t *testing.T) {
	out := SanitizeHTML(`<style>p { color: red }</style><p>text</p>`)
	assert.Equal(t, "<p>text</p>", out)
}

func TestSanitizeHTML_StripsEventHandlers(t *testing.T) {
	out := SanitizeHTML(`<div onclick="evil()" class="box">x</div>`)
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "x")
}

func TestSanitizeHTML_StripsUnsafeURLs(t *testing.T) {
	out := SanitizeHTML(`<p><span href="javascript:run()">link</span></p>`)
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, "link")
}

func TestSanitizeHTML_DropsNonWhitelistedTags(t *testing.T) {
	out := SanitizeHTML(`<p>before</p><iframe src="https://x"></iframe><p>after</p>`)
	assert.NotContains(t, out, "iframe")
	assert.Equal(t, "<p>before</p><p>after</p>", out)
}

func TestSanitizeHTML_PlainTextPassesThrough(t *testing.T) {
	assert.Equal(t, "just prose", SanitizeHTML("  just prose  "))
}
