package ai

import (
	"context"
	"fmt"
	"time"

	"smartnotes/internal/logger"
)

// legacyModels are known-good identifiers tried after the configured
// preferred and fallback models.
var legacyModels = []string{
	"gemini-pro",
	"gemini-1.5-flash-001",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-1.5-pro-latest",
}

// CandidateModels builds the probe order: preferred, fallback, then the
// legacy list, deduplicated while preserving first occurrence.
func CandidateModels(preferred, fallback string) []string {
	raw := make([]string, 0, 2+len(legacyModels))
	raw = append(raw, preferred, fallback)
	raw = append(raw, legacyModels...)

	seen := make(map[string]bool, len(raw))
	var out []string
	for _, name := range raw {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// SelectModel probes candidates in order and commits to the first that
// answers within probeTimeout. All candidates failing is a hard failure of
// the AI path.
func SelectModel(ctx context.Context, candidates []string, probeTimeout time.Duration, probe ProbeFunc) (string, error) {
	log := logger.Get()
	for _, name := range candidates {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := probe(probeCtx, name)
		cancel()
		if err == nil {
			log.Info().Str("model", name).Msg("model selected")
			return name, nil
		}
		log.Warn().Str("model", name).Err(err).Msg("model unavailable")
	}
	return "", fmt.Errorf("%w: tried %d candidates", ErrModelUnavailable, len(candidates))
}
