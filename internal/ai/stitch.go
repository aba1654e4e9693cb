package ai

import (
	"regexp"
	"strings"
)

var (
	codeFenceRe   = regexp.MustCompile("(?i)```(?:html)?")
	batchMarkerRe = regexp.MustCompile(`(?i)<!--\s*(?:end\s+)?batch[^>]*-->`)
	sentinelRe    = regexp.MustCompile(`(?i)<!--\s*(?:\.\.\.|placeholder|content\s+(?:continues|omitted|truncated))[^>]*-->`)
)

// Stitch concatenates multi-part responses in order and strips the artifact
// markers models tend to emit around batched output.
func Stitch(responses []string) string {
	joined := strings.Join(responses, "\n")
	joined = codeFenceRe.ReplaceAllString(joined, "")
	joined = batchMarkerRe.ReplaceAllString(joined, "")
	joined = sentinelRe.ReplaceAllString(joined, "")
	return strings.TrimSpace(joined)
}
