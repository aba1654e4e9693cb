package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TransportErrorKeepsOutput(t *testing.T) {
	remote := &fakeRemote{
		generateFn: func(string, string) (*Response, error) { return nil, errors.New("down") },
	}
	v := Validate(context.Background(), remote, "m", "<html></html>", 2, GenerateOptions{})
	assert.True(t, v.IsComplete)
	assert.False(t, v.ShouldRegenerate())
}

func TestValidate_ParsesRegenerateVerdict(t *testing.T) {
	remote := &fakeRemote{
		generateFn: func(string, string) (*Response, error) {
			return &Response{Fragments: []string{"```json\n" +
				`{"is_complete": false, "issues": ["nav missing"], "truncated": true, "recommendation": "regenerate"}` +
				"\n```"}}, nil
		},
	}
	v := Validate(context.Background(), remote, "m", "<html></html>", 2, GenerateOptions{})
	assert.False(t, v.IsComplete)
	assert.True(t, v.Truncated)
	assert.True(t, v.ShouldRegenerate())
	assert.Equal(t, []string{"nav missing"}, v.Issues)
}

func TestDecodeVerdict_MalformedFallsOpen(t *testing.T) {
	for _, text := range []string{"", "not json at all", "{broken", "[1, 2, 3]"} {
		v := decodeVerdict(text)
		assert.True(t, v.IsComplete, text)
		assert.Equal(t, "keep", v.Recommendation, text)
	}
}

func TestDecodeVerdict_UnknownRecommendationBecomesKeep(t *testing.T) {
	v := decodeVerdict(`{"is_complete": true, "recommendation": "retry-later"}`)
	assert.Equal(t, "keep", v.Recommendation)
	assert.False(t, v.ShouldRegenerate())
}

func TestDecodeVerdict_ExtractsEmbeddedObject(t *testing.T) {
	v := decodeVerdict(`Here is my assessment: {"is_complete": false, "recommendation": "regenerate"} hope that helps`)
	assert.True(t, v.ShouldRegenerate())
}

func TestExcerpt_ShortDocumentUntouched(t *testing.T) {
	doc := "<html><body>short</body></html>"
	assert.Equal(t, doc, excerpt(doc))
}

func TestExcerpt_LongDocumentKeepsHeadAndTail(t *testing.T) {
	doc := strings.Repeat("h", excerptWindow) + strings.Repeat("m", 10000) + strings.Repeat("t", excerptWindow)
	got := excerpt(doc)
	require.Less(t, len(got), len(doc))
	assert.True(t, strings.HasPrefix(got, strings.Repeat("h", excerptWindow)))
	assert.True(t, strings.HasSuffix(got, strings.Repeat("t", excerptWindow)))
	assert.Contains(t, got, "middle omitted")
}
