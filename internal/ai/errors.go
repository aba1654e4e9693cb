package ai

import "errors"

// Error taxonomy for the generation pipeline. The caller is expected to fall
// back to the deterministic formatter on any of these.
var (
	// ErrMissingAPIKey means no credentials were configured; no remote call
	// is attempted.
	ErrMissingAPIKey = errors.New("gemini API key not configured")

	// ErrModelUnavailable means every candidate model failed its probe.
	ErrModelUnavailable = errors.New("no gemini model available")

	// ErrRemoteUnavailable covers upload or polling failures of the
	// file-attachment strategy.
	ErrRemoteUnavailable = errors.New("gemini file service unavailable")

	// ErrEmptyGeneration means a generation call returned no usable text.
	ErrEmptyGeneration = errors.New("generation returned no content")

	// ErrQuotaExceeded means the estimated token cost would blow the daily
	// budget; generation is refused before any call is made.
	ErrQuotaExceeded = errors.New("token quota would be exceeded")

	// ErrGenerationFailed is the terminal aggregate error once every
	// strategy and retry is exhausted.
	ErrGenerationFailed = errors.New("all generation strategies failed")
)
