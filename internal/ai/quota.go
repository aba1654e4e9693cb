package ai

import "smartnotes/internal/logger"

// OutputMultiplier is the assumed ratio of output to input tokens. It is a
// rough heuristic, not a calibrated law; keep it tunable.
var OutputMultiplier = 2

// EstimateTokens approximates token count with the ~4 characters per token
// rule, floored at one token for non-empty text.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	n := (len(text) + 3) / 4
	if n < 1 {
		n = 1
	}
	return n
}

// FitsBudget is a pre-flight circuit breaker: it estimates the total token
// cost of generating from chunks and refuses when the daily budget minus the
// reserve buffer would be exceeded. No partial generation happens after a
// refusal.
func FitsBudget(chunks []string, dailyTokenBudget, reserveBuffer int) bool {
	inputTokens := 0
	for _, c := range chunks {
		inputTokens += EstimateTokens(c)
	}
	outputTokens := inputTokens * OutputMultiplier
	overhead := EstimateTokens(sectionPromptOverheadSample) * len(chunks)
	total := inputTokens + outputTokens + overhead

	available := dailyTokenBudget - reserveBuffer
	log := logger.Get()
	if total > available {
		log.Warn().
			Int("estimated_tokens", total).
			Int("available_tokens", available).
			Msg("token quota check failed")
		return false
	}
	log.Info().
		Int("estimated_tokens", total).
		Int("available_tokens", available).
		Msg("token quota check ok")
	return true
}
