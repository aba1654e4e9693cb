package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStitch_JoinsInOrder(t *testing.T) {
	out := Stitch([]string{"<p>one</p>", "<p>two</p>", "<p>three</p>"})
	assert.Equal(t, "<p>one</p>\n<p>two</p>\n<p>three</p>", out)
}

func TestStitch_StripsCodeFences(t *testing.T) {
	out := Stitch([]string{"```html\n<p>body</p>\n```"})
	assert.Equal(t, "<p>body</p>", out)
}

func TestStitch_StripsBatchMarkers(t *testing.T) {
	out := Stitch([]string{
		"<p>a</p>\n<!-- BATCH 1 of 2 -->",
		"<!-- END BATCH -->\n<p>b</p>",
	})
	assert.NotContains(t, out, "BATCH")
	assert.Contains(t, out, "<p>a</p>")
	assert.Contains(t, out, "<p>b</p>")
}

func TestStitch_StripsPlaceholderSentinels(t *testing.T) {
	out := Stitch([]string{"<p>a</p><!-- content continues --><p>b</p>"})
	assert.Equal(t, "<p>a</p><p>b</p>", out)

	out = Stitch([]string{"<div>x</div>\n<!-- ... -->"})
	assert.Equal(t, "<div>x</div>", out)
}

func TestStitch_KeepsOrdinaryComments(t *testing.T) {
	out := Stitch([]string{"<!-- section intro --><p>a</p>"})
	assert.Equal(t, "<!-- section intro --><p>a</p>", out)
}
