package ai

import (
	"context"
	"encoding/json"
	"strings"

	"smartnotes/internal/logger"
)

// Verdict is the self-consistency grade the model assigns to its own output.
type Verdict struct {
	IsComplete      bool     `json:"is_complete"`
	Issues          []string `json:"issues"`
	MissingElements []string `json:"missing_elements"`
	Truncated       bool     `json:"truncated"`
	Recommendation  string   `json:"recommendation"`
}

// ShouldRegenerate reports whether the verdict asks for another attempt.
func (v Verdict) ShouldRegenerate() bool {
	return v.Recommendation == "regenerate"
}

// DefaultVerdict is the fail-open result used whenever the validator is
// unavailable or unparseable. Delivery is never blocked on validation.
func DefaultVerdict() Verdict {
	return Verdict{IsComplete: true, Recommendation: "keep"}
}

// excerptWindow bounds how much of the document is sent for validation.
const excerptWindow = 4000

// Validate submits a head+tail excerpt of the assembled HTML back to the
// model with a checklist prompt. Any transport or parse failure yields the
// optimistic default.
func Validate(ctx context.Context, remote Remote, model, html string, expectedTabs int, opts GenerateOptions) Verdict {
	prompt := BuildValidationPrompt(excerpt(html), expectedTabs)
	resp, err := remote.Generate(ctx, model, prompt, opts)
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("self-validation unavailable, keeping output")
		return DefaultVerdict()
	}
	return decodeVerdict(resp.Text())
}

// decodeVerdict parses a verdict answer; absence or malformation decodes to
// the default at this single boundary rather than at every call site.
func decodeVerdict(text string) Verdict {
	text = stripCodeFences(text)
	if s := findFirstJSON(text); s != "" {
		text = s
	}
	v := DefaultVerdict()
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("unparseable validation verdict, keeping output")
		return DefaultVerdict()
	}
	if v.Recommendation != "keep" && v.Recommendation != "regenerate" {
		v.Recommendation = "keep"
	}
	return v
}

// stripCodeFences removes markdown code-fence wrappers around a response.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

// findFirstJSON scans for the first balanced top-level JSON object.
func findFirstJSON(s string) string {
	start := -1
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			if start == -1 {
				start = i
			}
			depth++
		case '}':
			if start != -1 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}

func excerpt(html string) string {
	if len(html) <= 2*excerptWindow {
		return html
	}
	return html[:excerptWindow] + "\n<!-- middle omitted -->\n" + html[len(html)-excerptWindow:]
}
