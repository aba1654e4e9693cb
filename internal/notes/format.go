package notes

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Section pairs a tab title with its generated HTML body.
type Section struct {
	Title string
	HTML  string
}

var (
	// Header: short, uppercase, or ends in a colon. Not a full sentence.
	headerPattern = regexp.MustCompile(`^([A-Z][A-Z\s\d\-\.]+|.{1,50}:)$`)

	defPattern = regexp.MustCompile(`(?i)^\s*(Definition|Define)\b[:\.]?(.*)`)
	thmPattern = regexp.MustCompile(`(?i)^\s*(Theorem|Proposition|Lemma|Law)\b[:\.]?(.*)`)
	exPattern  = regexp.MustCompile(`(?i)^\s*(Example|Exercise)\b[:\.]?(.*)`)

	chapterPattern = regexp.MustCompile(`(?im)^\s*(Chapter|Unit|Module)\s+\d+`)
)

// SmartFormat applies regex heuristics to wrap raw text in definition,
// theorem, and example call-out boxes.
func SmartFormat(text string) string {
	var b strings.Builder
	inBox := false

	closeBox := func() {
		if inBox {
			b.WriteString("</div>\n")
			inBox = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := defPattern.FindStringSubmatch(line); m != nil {
			closeBox()
			title := strings.TrimSpace(m[1] + " " + strings.TrimSpace(m[2]))
			b.WriteString(`<div class="definition-box"><span class="definition-title">` + html.EscapeString(title) + "</span>\n")
			inBox = true
			continue
		}
		if m := thmPattern.FindStringSubmatch(line); m != nil {
			closeBox()
			title := strings.TrimSpace(m[1] + " " + strings.TrimSpace(m[2]))
			b.WriteString(`<div class="theorem-box"><span class="theorem-title">` + html.EscapeString(title) + "</span>\n")
			inBox = true
			continue
		}
		if m := exPattern.FindStringSubmatch(line); m != nil {
			closeBox()
			title := strings.TrimSpace(m[1] + " " + strings.TrimSpace(m[2]))
			b.WriteString(`<div class="example-box"><div class="example-badge">Example</div><div class="example-header">` + html.EscapeString(title) + "</div>\n")
			inBox = true
			continue
		}

		// A header line ends whatever box is open.
		if headerPattern.MatchString(line) && len(line) > 3 {
			closeBox()
			b.WriteString("<h3>" + html.EscapeString(line) + "</h3>\n")
			continue
		}

		b.WriteString("<p>" + html.EscapeString(line) + "</p>\n")
	}
	closeBox()
	return b.String()
}

// SplitChapters splits text into tab sections at chapter/unit/module
// boundaries. Without any boundary the whole text becomes one section.
func SplitChapters(text string) []Section {
	matches := chapterPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Section{{Title: "Full Notes", HTML: SmartFormat(text)}}
	}

	var sections []Section
	for i, m := range matches {
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		chunk := text[start:end]
		title := strings.TrimSpace(strings.SplitN(chunk, "\n", 2)[0])
		if title == "" {
			title = fmt.Sprintf("Chapter %d", i+1)
		}
		sections = append(sections, Section{Title: title, HTML: SmartFormat(chunk)})
	}
	return sections
}

// RenderTabs produces the navigation bar entries and the tabbed content
// markup for a list of sections. The first tab is marked active.
func RenderTabs(sections []Section) (nav string, content string) {
	var navB, contentB strings.Builder
	for i, s := range sections {
		id := i + 1
		active := ""
		if i == 0 {
			active = " active"
		}

		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = fmt.Sprintf("Part %d", id)
		}
		titleAttr := html.EscapeString(title)
		titleJS := strings.ReplaceAll(title, "'", `\'`)

		short := strings.TrimSpace(strings.SplitN(title, ":", 2)[0])
		if short == "" || len(short) > 12 {
			short = fmt.Sprintf("Part %d", id)
		}

		fmt.Fprintf(&navB, `
        <div class="nav-item%s" data-title="%s" aria-label="%s" role="button" tabindex="0" onclick="switchTab(%d, '%s')">
            <span class="nav-icon">●</span>
            <span>%s</span>
        </div>
`, active, titleAttr, titleAttr, id, titleJS, html.EscapeString(short))

		fmt.Fprintf(&contentB, `<div id="tab-%d" class="tab-section%s"><section class="glass-panel"><h2>%s</h2>%s</section></div>%s`,
			id, active, html.EscapeString(title), s.HTML, "\n")
	}
	return navB.String(), contentB.String()
}
