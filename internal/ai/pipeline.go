package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"smartnotes/internal/logger"
	"smartnotes/internal/notes"
)

// Options bounds a pipeline instance. Zero values are filled with the same
// defaults the configuration layer uses.
type Options struct {
	PreferredModel string
	FallbackModel  string
	ProbeTimeout   time.Duration

	Timeout         time.Duration
	MaxOutputTokens int32

	MaxChars      int
	MaxChunkWords int
	MergeWords    int

	DailyTokenBudget int
	ReserveTokens    int

	PollAttempts int
	PollInterval time.Duration

	// Sectioned switches to the chunk-per-call variant that renders one
	// section per chunk through the template, instead of asking for one
	// whole document.
	Sectioned bool
}

// Request is one conversion job. Text is the already-extracted document
// text; SourcePath enables the file-attachment strategy when set.
type Request struct {
	Text         string
	SourcePath   string
	OutputPath   string
	TemplatePath string
}

// Pipeline sequences model selection, generation, stitching, repair and
// self-validation. Instances share no mutable state, so concurrent requests
// simply use separate pipelines.
type Pipeline struct {
	remote Remote
	probe  ProbeFunc
	opts   Options
	log    zerolog.Logger
}

func New(remote Remote, probe ProbeFunc, opts Options) *Pipeline {
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = 5 * time.Second
	}
	if opts.MergeWords <= 0 {
		opts.MergeWords = 3000
	}
	if opts.PollAttempts <= 0 {
		opts.PollAttempts = 10
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	return &Pipeline{remote: remote, probe: probe, opts: opts, log: logger.Get()}
}

type generationStrategy struct {
	name string
	run  func(ctx context.Context) ([]string, error)
}

// GenerateNotes runs the full AI pipeline and writes the artifact exactly
// once on success. Any returned error means nothing was persisted and the
// caller should fall back to the deterministic formatter.
func (p *Pipeline) GenerateNotes(ctx context.Context, req Request) error {
	model, err := SelectModel(ctx, CandidateModels(p.opts.PreferredModel, p.opts.FallbackModel), p.opts.ProbeTimeout, p.probe)
	if err != nil {
		return err
	}

	chunks := MergeChunks(Chunk(req.Text, p.opts.MaxChunkWords, p.opts.MaxChars), p.opts.MergeWords)
	if len(chunks) == 0 {
		return fmt.Errorf("%w: no text to generate from", ErrGenerationFailed)
	}
	if !FitsBudget(chunks, p.opts.DailyTokenBudget, p.opts.ReserveTokens) {
		return ErrQuotaExceeded
	}

	contentType := DetectContentType(req.Text)
	tpl, err := notes.LoadTemplate(req.TemplatePath)
	if err != nil {
		return err
	}

	if p.opts.Sectioned {
		return p.generateSectioned(ctx, model, chunks, contentType, tpl, req.OutputPath)
	}
	return p.generateDocument(ctx, model, chunks, contentType, tpl, req)
}

// generateSectioned is the chunk-per-call mode: one section per chunk,
// rendered through the template skeleton.
func (p *Pipeline) generateSectioned(ctx context.Context, model string, chunks []string, contentType, tpl, outputPath string) error {
	sections, err := GenerateSections(ctx, p.remote, model, chunks, contentType, p.genOpts())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	html := Repair(notes.RenderDocument(tpl, sections))
	if err := notes.WriteArtifact(outputPath, html); err != nil {
		return err
	}
	p.log.Info().Str("model", model).Int("sections", len(sections)).Str("output", outputPath).Msg("sectioned generation complete")
	return nil
}

// generateDocument folds over the strategy chain, repairs the stitched
// output, gates it structurally, and runs one self-validation cycle.
func (p *Pipeline) generateDocument(ctx context.Context, model string, chunks []string, contentType, tpl string, req Request) error {
	prompt := BuildDocumentPrompt(contentType, TemplateReference(tpl))
	opts := p.genOpts()

	inline := func(ctx context.Context) ([]string, error) {
		return GenerateDocumentInline(ctx, p.remote, model, prompt, req.Text, opts)
	}

	var strategies []generationStrategy
	if req.SourcePath != "" {
		strategies = append(strategies, generationStrategy{StrategyFile, func(ctx context.Context) ([]string, error) {
			file, err := UploadAndAwait(ctx, p.remote, req.SourcePath, p.opts.PollAttempts, p.opts.PollInterval)
			if err != nil {
				return nil, err
			}
			return GenerateDocumentWithFile(ctx, p.remote, model, file, prompt, opts)
		}})
	}
	strategies = append(strategies, generationStrategy{StrategyInline, inline})

	var attempts []GenerationAttempt
	var responses []string
	var used string
	for _, s := range strategies {
		out, err := s.run(ctx)
		attempts = append(attempts, GenerationAttempt{Strategy: s.name, Prompt: prompt, Responses: out, Err: err})
		if err == nil {
			responses = out
			used = s.name
			break
		}
		p.log.Warn().Str("strategy", s.name).Err(err).Msg("generation strategy failed")
	}
	if used == "" {
		return fmt.Errorf("%w after %d attempts: %v", ErrGenerationFailed, len(attempts), attempts[len(attempts)-1].Err)
	}

	html := Repair(Stitch(responses))

	// Structural gate: one bounded retry through the inline strategy, even
	// when file mode nominally succeeded. The retry is quota-exempt.
	if !ValidateStructure(html) {
		p.log.Warn().Str("strategy", used).Msg("structural check failed, retrying via inline text")
		responses, err := inline(ctx)
		if err != nil {
			return fmt.Errorf("%w: structural retry: %v", ErrGenerationFailed, err)
		}
		html = Repair(Stitch(responses))
		used = StrategyInline
		if !ValidateStructure(html) {
			return fmt.Errorf("%w: output malformed after retry", ErrGenerationFailed)
		}
	}

	expectedTabs := len(chunks)
	if expectedTabs < 2 {
		expectedTabs = 2
	}
	verdict := Validate(ctx, p.remote, model, html, expectedTabs, opts)
	if verdict.ShouldRegenerate() && used == StrategyFile {
		p.log.Info().Strs("issues", verdict.Issues).Msg("validator recommends regeneration, retrying via inline text")
		if regenerated, err := inline(ctx); err == nil {
			candidate := Repair(Stitch(regenerated))
			if ValidateStructure(candidate) {
				html = candidate
			}
		}
		// One cycle only; the second output stands regardless of any
		// further verdict.
	}

	if err := notes.WriteArtifact(req.OutputPath, html); err != nil {
		return err
	}
	p.log.Info().Str("model", model).Str("strategy", used).Str("output", req.OutputPath).Msg("document generation complete")
	return nil
}

func (p *Pipeline) genOpts() GenerateOptions {
	return GenerateOptions{Timeout: p.opts.Timeout, MaxOutputTokens: p.opts.MaxOutputTokens}
}
