package ai

import (
	"fmt"
	"regexp"
	"strings"
)

// sectionPromptOverheadSample stands in for the per-chunk prompt template
// when estimating token cost.
const sectionPromptOverheadSample = "You are an expert explainer. Create structured, well-formatted HTML content following strict formatting rules."

var educationalKeywords = []string{
	"chapter", "theorem", "definition", "lemma", "proposition",
	"proof", "example", "exercise", "lecture", "syllabus",
}

// DetectContentType classifies text as "educational" or "general" by keyword
// scan, steering prompt selection.
func DetectContentType(text string) string {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range educationalKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	if hits >= 2 {
		return "educational"
	}
	return "general"
}

func promptSubject(contentType string) string {
	if contentType == "educational" {
		return "an expert math and science explainer creating study notes"
	}
	return "a professional technical writer creating a readable summary document"
}

// BuildSectionPrompt is the per-chunk instruction prompt used by the
// sectioned generation mode.
func BuildSectionPrompt(chunk, contentType string) string {
	return "You are " + promptSubject(contentType) + ". Create structured, well-formatted HTML content following strict formatting rules.\n\n" +
		"CRITICAL FORMATTING RULES:\n" +
		"1. Use <div class='definition-box'> for definitions:\n" +
		"   <div class='definition-box'><span class='definition-title'>Definition: [Name]</span>Text here</div>\n" +
		"2. Use <div class='theorem-box'> for theorems, propositions, lemmas:\n" +
		"   <div class='theorem-box'><span class='theorem-title'>Theorem: [Name]</span>Text here</div>\n" +
		"3. Use <div class='example-box'> for examples:\n" +
		"   <div class='example-box'><div class='example-badge'>Example</div>Text here</div>\n" +
		"4. Use <h3> for section headers\n" +
		"5. Use <p> for paragraphs\n" +
		"6. Use <ul><li> for bullet lists\n" +
		"7. Use <ol><li> for numbered lists\n" +
		"8. NO inline styling, NO external links, NO <style> tags\n" +
		"9. Escape special HTML characters\n\n" +
		"INPUT TEXT:\n" + chunk + "\n\n" +
		"STRUCTURE REQUIRED:\n" +
		"- Overview paragraph\n" +
		"- Key definitions (use definition-box)\n" +
		"- Main concepts with explanations\n" +
		"- Important theorems/properties (use theorem-box)\n" +
		"- Worked examples (use example-box)\n" +
		"- Key takeaways\n\n" +
		"Output ONLY valid HTML content. Be concise and educational."
}

// BuildDocumentPrompt is the whole-document instruction used by both the
// file-attachment and inline-text strategies. templateRef is a structural
// excerpt of the HTML skeleton the output must follow.
func BuildDocumentPrompt(contentType, templateRef string) string {
	var b strings.Builder
	b.WriteString("You are " + promptSubject(contentType) + ". Produce ONE complete, self-contained HTML document of interactive study notes for the attached source material.\n\n")
	b.WriteString("STRUCTURAL REQUIREMENTS (all mandatory):\n")
	b.WriteString("1. A full document: <!DOCTYPE html>, <html>, <head> with embedded CSS, <body>, all closed.\n")
	b.WriteString("2. All content inside <div id=\"content-viewport\">.\n")
	b.WriteString("3. One <div id=\"tab-N\" class=\"tab-section\"> per chapter or major topic; the first also carries the 'active' class.\n")
	b.WriteString("4. A <nav class=\"bottom-nav\"> with a <div class=\"nav-track\"> holding one .nav-item per tab, wired to switchTab(N, 'Title').\n")
	b.WriteString("5. A <script> defining switchTab(id, title) and buildTOC(), plus a DOMContentLoaded initializer activating tab 1.\n")
	b.WriteString("6. Use <div class='definition-box'>, <div class='theorem-box'>, <div class='example-box'> call-outs exactly as in the reference skeleton.\n")
	b.WriteString("7. Do NOT wrap the answer in markdown code fences. Output raw HTML only.\n\n")
	if templateRef != "" {
		b.WriteString("REFERENCE SKELETON (match its markers and class names):\n")
		b.WriteString(templateRef)
		b.WriteString("\n\n")
	}
	b.WriteString("Cover the whole document. Be concise but complete; every chapter gets its own tab.")
	return b.String()
}

// BuildValidationPrompt asks the model to grade previously generated HTML
// against a checklist and answer with a structured verdict.
func BuildValidationPrompt(excerpt string, expectedTabs int) string {
	return fmt.Sprintf(`You are a strict HTML reviewer. Below are the head and tail of a generated notes document (middle omitted). Check it against this list:
- contains <html> and <body>, both closed
- contains a bottom-nav with a nav-track
- contains at least %d tab-section divs
- contains switchTab and buildTOC script functions
- does not end mid-tag or mid-sentence

Answer ONLY with JSON, no code fences:
{"is_complete": true|false, "issues": ["..."], "missing_elements": ["..."], "truncated": true|false, "recommendation": "keep"|"regenerate"}

DOCUMENT EXCERPT:
%s`, expectedTabs, excerpt)
}

var templateRefPattern = regexp.MustCompile(`(?s)<body.*?</html>`)

// TemplateReference reduces a full template skeleton to the structural part
// fed into the document prompt, keeping prompt cost bounded.
func TemplateReference(template string) string {
	ref := template
	if m := templateRefPattern.FindString(template); m != "" {
		ref = m
	}
	const maxRef = 4000
	if len(ref) > maxRef {
		ref = ref[:maxRef]
	}
	return ref
}
