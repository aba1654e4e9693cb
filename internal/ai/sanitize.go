package ai

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleBlockRe   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	eventAttrRe    = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*["']?[^"'>\s]*["']?`)
	unsafeURLRe    = regexp.MustCompile(`(?i)(href|src|action)\s*=\s*["']?(?:javascript:|data:)[^"'>\s]*["']?`)
	anyTagRe       = regexp.MustCompile(`<[^>]+>`)
	allowedTagRe   = regexp.MustCompile(`(?i)^</?(?:p|h[1-6]|ul|ol|li|div|span|br|strong|em|code|section)(?:\s[^>]*)?/?>$`)
)

// SanitizeHTML enforces the strict formatting rules on per-chunk AI output:
// no scripts or styles, no event handlers, no javascript:/data: URLs, and
// only the whitelisted structural tags.
func SanitizeHTML(html string) string {
	html = scriptBlockRe.ReplaceAllString(html, "")
	html = styleBlockRe.ReplaceAllString(html, "")
	html = eventAttrRe.ReplaceAllString(html, "")
	html = unsafeURLRe.ReplaceAllString(html, "")

	for _, tag := range anyTagRe.FindAllString(html, -1) {
		if !allowedTagRe.MatchString(tag) {
			html = strings.ReplaceAll(html, tag, "")
		}
	}
	return strings.TrimSpace(html)
}
