package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all settings for a conversion run. Values come from the
// environment (GEMINI_* variables, optionally via a .env file) with defaults
// suitable for the Gemini free tier.
type Config struct {
	// Gemini credentials and model preferences.
	GeminiAPIKey   string
	PreferredModel string
	FallbackModel  string

	// Remote call limits.
	TimeoutSeconds  float64
	ProbeTimeout    time.Duration
	MaxOutputTokens int32

	// Input ceilings.
	MaxChars      int
	MaxChunkWords int
	MergeWords    int

	// Daily token budget circuit breaker.
	DailyTokenBudget int
	ReserveTokens    int

	// Upload polling.
	PollAttempts int
	PollInterval time.Duration

	TemplatePath string
	OutputDir    string
	LogLevel     string
}

// Enabled reports whether the AI path can be attempted at all.
func (c Config) Enabled() bool { return c.GeminiAPIKey != "" }

// Timeout returns the per-call generation timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("preferred_model", "gemini-2.5-flash")
	v.SetDefault("fallback_model", "gemini-2.0-flash")
	v.SetDefault("timeout_seconds", 240.0)
	v.SetDefault("probe_timeout", "5s")
	v.SetDefault("max_output_tokens", 32768)
	v.SetDefault("max_chars", 400000)
	v.SetDefault("max_chunk_words", 1500)
	v.SetDefault("merge_words", 3000)
	v.SetDefault("daily_token_budget", 1000000)
	v.SetDefault("reserve_tokens", 50000)
	v.SetDefault("poll_attempts", 10)
	v.SetDefault("poll_interval", "2s")
	v.SetDefault("output_dir", "outputs")
	v.SetDefault("log_level", "info")

	_ = v.BindEnv("api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("preferred_model", "GEMINI_PREFERRED_MODEL")
	_ = v.BindEnv("fallback_model", "GEMINI_FALLBACK_MODEL")
	_ = v.BindEnv("timeout_seconds", "GEMINI_TIMEOUT_SECONDS")
	_ = v.BindEnv("max_output_tokens", "GEMINI_MAX_OUTPUT_TOKENS")
	_ = v.BindEnv("max_chars", "GEMINI_MAX_CHARS")
	_ = v.BindEnv("max_chunk_words", "GEMINI_MAX_CHUNK_WORDS")
	_ = v.BindEnv("daily_token_budget", "GEMINI_DAILY_TOKEN_BUDGET")
	_ = v.BindEnv("template_path", "SMARTNOTES_TEMPLATE")
	_ = v.BindEnv("output_dir", "SMARTNOTES_OUTPUT_DIR")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	return Config{
		GeminiAPIKey:     v.GetString("api_key"),
		PreferredModel:   v.GetString("preferred_model"),
		FallbackModel:    v.GetString("fallback_model"),
		TimeoutSeconds:   v.GetFloat64("timeout_seconds"),
		ProbeTimeout:     v.GetDuration("probe_timeout"),
		MaxOutputTokens:  v.GetInt32("max_output_tokens"),
		MaxChars:         v.GetInt("max_chars"),
		MaxChunkWords:    v.GetInt("max_chunk_words"),
		MergeWords:       v.GetInt("merge_words"),
		DailyTokenBudget: v.GetInt("daily_token_budget"),
		ReserveTokens:    v.GetInt("reserve_tokens"),
		PollAttempts:     v.GetInt("poll_attempts"),
		PollInterval:     v.GetDuration("poll_interval"),
		TemplatePath:     v.GetString("template_path"),
		OutputDir:        v.GetString("output_dir"),
		LogLevel:         v.GetString("log_level"),
	}
}
