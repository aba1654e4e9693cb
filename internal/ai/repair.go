package ai

import (
	"fmt"
	"regexp"
	"strings"
)

// fallbackScript implements tab switching and table-of-contents rebuilding.
// Injected whenever the model output lacks the required script functions.
const fallbackScript = `
function switchTab(id, title) {
  document.querySelectorAll('.tab-section').forEach(function (el) {
    el.classList.remove('active');
  });
  var tab = document.getElementById('tab-' + id);
  if (tab) { tab.classList.add('active'); }
  document.querySelectorAll('.nav-item').forEach(function (el, i) {
    el.classList.toggle('active', i === id - 1);
  });
  buildTOC();
  window.scrollTo(0, 0);
}
function buildTOC() {
  var list = document.getElementById('toc-list');
  if (!list) { return; }
  list.innerHTML = '';
  var active = document.querySelector('.tab-section.active');
  if (!active) { return; }
  active.querySelectorAll('h2, h3').forEach(function (h, i) {
    if (!h.id) { h.id = 'heading-' + i; }
    var link = document.createElement('a');
    link.href = '#' + h.id;
    link.textContent = h.textContent;
    list.appendChild(link);
  });
}
document.addEventListener('DOMContentLoaded', function () {
  switchTab(1, '');
  document.querySelectorAll('.nav-item').forEach(function (el, i) {
    el.addEventListener('click', function () { switchTab(i + 1, ''); });
    el.addEventListener('keydown', function (ev) {
      if (ev.key === 'Enter' || ev.key === ' ') { switchTab(i + 1, ''); }
    });
  });
});
`

var (
	danglingTagRe  = regexp.MustCompile(`<[a-zA-Z][^<>]*$`)
	viewportRe     = regexp.MustCompile(`<div[^>]*id=["']content-viewport["'][^>]*>`)
	tabSectionRe   = regexp.MustCompile(`(?i)class=["'][^"'>]*tab-section`)
	htmlOpenTagRe  = regexp.MustCompile(`(?i)<html[\s>]`)
	bodyOpenTagRe  = regexp.MustCompile(`(?i)<body[\s>]`)
	headCloseRe    = regexp.MustCompile(`(?i)</head>`)
	firstScriptRe  = regexp.MustCompile(`(?i)<script`)
)

var navIcons = []string{"●", "◆", "■", "▲"}

// Repair deterministically fixes the defects AI output commonly shows:
// mid-tag truncation, unclosed containers, missing navigation, missing tab
// scripts, and missing closing tags. Every pass is a no-op when its target
// condition already holds, so Repair is idempotent.
func Repair(html string) string {
	html = stripDanglingTag(html)
	html = ensureOpeningTags(html)
	html = closeViewport(html)
	html = ensureNavigation(html)
	html = ensureScripts(html)
	html = ensureClosingTags(html)
	return html
}

// ValidateStructure is the minimal well-formedness gate run after repair.
func ValidateStructure(html string) bool {
	lower := strings.ToLower(html)
	return strings.Contains(lower, "<html") && strings.Contains(lower, "<body")
}

// stripDanglingTag removes an unterminated opening tag at the very end of
// the string, which happens when output is cut off mid-tag.
func stripDanglingTag(html string) string {
	trimmed := strings.TrimRight(html, " \t\r\n")
	return danglingTagRe.ReplaceAllString(trimmed, "")
}

func ensureOpeningTags(html string) string {
	if !htmlOpenTagRe.MatchString(html) {
		html = "<html>\n" + html
	}
	if !bodyOpenTagRe.MatchString(html) {
		if loc := headCloseRe.FindStringIndex(html); loc != nil {
			html = html[:loc[1]] + "\n<body>" + html[loc[1]:]
		} else if loc := htmlOpenTagRe.FindStringIndex(html); loc != nil {
			at := strings.Index(html[loc[0]:], ">")
			if at >= 0 {
				at += loc[0] + 1
				html = html[:at] + "\n<body>" + html[at:]
			}
		}
	}
	return html
}

// closeViewport balances div tags from the content viewport onward. The
// viewport's own opening div participates in the count, so a well-formed
// document yields a zero deficit.
func closeViewport(html string) string {
	loc := viewportRe.FindStringIndex(html)
	if loc == nil {
		return html
	}
	rest := html[loc[0]:]
	opens := strings.Count(rest, "<div")
	closes := strings.Count(rest, "</div>")
	for i := closes; i < opens; i++ {
		html += "\n</div>"
	}
	return html
}

// viewportCloseIndex finds the offset just past the div that closes the
// content viewport, or -1.
func viewportCloseIndex(html string) int {
	loc := viewportRe.FindStringIndex(html)
	if loc == nil {
		return -1
	}
	depth := 0
	i := loc[0]
	for i < len(html) {
		open := strings.Index(html[i:], "<div")
		close := strings.Index(html[i:], "</div>")
		switch {
		case close < 0:
			return -1
		case open >= 0 && open < close:
			depth++
			i += open + 4
		default:
			depth--
			i += close + 6
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func ensureNavigation(html string) string {
	if strings.Contains(strings.ToLower(html), "bottom-nav") {
		return html
	}

	tabs := len(tabSectionRe.FindAllString(html, -1))
	if tabs < 2 {
		tabs = 2
	}

	var nav strings.Builder
	nav.WriteString("\n<nav class=\"bottom-nav\">\n<div class=\"nav-track\">\n")
	for i := 1; i <= tabs; i++ {
		icon := navIcons[(i-1)%len(navIcons)]
		fmt.Fprintf(&nav, `<div class="nav-item%s" role="button" tabindex="0" onclick="switchTab(%d, 'Part %d')"><span class="nav-icon">%s</span><span>Part %d</span></div>%s`,
			activeClass(i == 1), i, i, icon, i, "\n")
	}
	nav.WriteString("</div>\n</nav>\n")
	block := nav.String()

	// Preferred insertion points, in order: after the viewport's closing
	// tags, before the first script, before </body>, then plain append.
	if at := viewportCloseIndex(html); at >= 0 {
		return html[:at] + block + html[at:]
	}
	if loc := firstScriptRe.FindStringIndex(html); loc != nil {
		return html[:loc[0]] + block + html[loc[0]:]
	}
	if at := strings.Index(strings.ToLower(html), "</body>"); at >= 0 {
		return html[:at] + block + html[at:]
	}
	return html + block
}

func activeClass(active bool) string {
	if active {
		return " active"
	}
	return ""
}

func ensureScripts(html string) string {
	if strings.Contains(html, "function switchTab") && strings.Contains(html, "function buildTOC") {
		return html
	}
	block := "\n<script>" + fallbackScript + "</script>\n"
	if at := strings.Index(strings.ToLower(html), "</body>"); at >= 0 {
		return html[:at] + block + html[at:]
	}
	return html + block
}

func ensureClosingTags(html string) string {
	lower := strings.ToLower(html)
	if !strings.Contains(lower, "</body>") {
		html += "\n</body>"
	}
	if !strings.Contains(strings.ToLower(html), "</html>") {
		html += "\n</html>"
	}
	return html
}
