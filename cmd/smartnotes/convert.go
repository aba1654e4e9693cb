package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"smartnotes/internal/ai"
	"smartnotes/internal/config"
	"smartnotes/internal/extract"
	"smartnotes/internal/logger"
	"smartnotes/internal/notes"
)

func convertCmd() *cobra.Command {
	var out string
	var templatePath string
	var aiProvider string
	var aiMode string
	var preferredModel string

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a .pdf or .txt file into tabbed smart notes HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.LogLevel)
			log := logger.Get()

			inputPath := args[0]
			if out == "" {
				out = filepath.Join(cfg.OutputDir, extract.SafeOutputName(inputPath))
			}
			if templatePath == "" {
				templatePath = cfg.TemplatePath
			}
			if preferredModel != "" {
				cfg.PreferredModel = preferredModel
			}

			text, err := extract.Extract(inputPath)
			if err != nil {
				return err
			}

			useAI := strings.EqualFold(aiProvider, "gemini")
			if useAI && !cfg.Enabled() {
				log.Warn().Msg("GEMINI_API_KEY not set, using smart format")
				useAI = false
			}

			if useAI {
				remote, err := ai.NewGemini(cmd.Context(), cfg.GeminiAPIKey)
				if err != nil {
					return err
				}
				pipeline := ai.New(remote, remote.Prober(), ai.Options{
					PreferredModel:   cfg.PreferredModel,
					FallbackModel:    cfg.FallbackModel,
					ProbeTimeout:     cfg.ProbeTimeout,
					Timeout:          cfg.Timeout(),
					MaxOutputTokens:  cfg.MaxOutputTokens,
					MaxChars:         cfg.MaxChars,
					MaxChunkWords:    cfg.MaxChunkWords,
					MergeWords:       cfg.MergeWords,
					DailyTokenBudget: cfg.DailyTokenBudget,
					ReserveTokens:    cfg.ReserveTokens,
					PollAttempts:     cfg.PollAttempts,
					PollInterval:     cfg.PollInterval,
					Sectioned:        strings.EqualFold(aiMode, "sections"),
				})
				err = pipeline.GenerateNotes(cmd.Context(), ai.Request{
					Text:         text,
					SourcePath:   inputPath,
					OutputPath:   out,
					TemplatePath: templatePath,
				})
				if err == nil {
					cmd.Printf("Success! Generated %s\n", out)
					return nil
				}
				log.Warn().Err(err).Msg("AI generation failed, falling back to smart format")
			}

			if err := notes.GenerateSmartNotes(text, out, templatePath); err != nil {
				return err
			}
			cmd.Printf("Success! Generated %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output HTML path (default: <output dir>/<name>_smart_notes.html)")
	cmd.Flags().StringVar(&templatePath, "template", "", "HTML template path (default: embedded template)")
	cmd.Flags().StringVar(&aiProvider, "ai", "off", "AI provider: off|gemini")
	cmd.Flags().StringVar(&aiMode, "ai-mode", "document", "AI generation mode: document|sections")
	cmd.Flags().StringVar(&preferredModel, "model", "", "override the preferred Gemini model")
	return cmd
}
