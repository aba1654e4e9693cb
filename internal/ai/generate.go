package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartnotes/internal/logger"
	"smartnotes/internal/notes"
)

// StrategyFile uploads the source document as an attachment; StrategyInline
// sends the extracted text in the prompt itself.
const (
	StrategyFile   = "file-attachment"
	StrategyInline = "inline-text"
)

// GenerationAttempt records one strategy execution. Attempts are never
// retried individually; a failure switches strategy at the orchestrator.
type GenerationAttempt struct {
	Strategy  string
	Prompt    string
	Responses []string
	Err       error
}

// responseText extracts usable text from a possibly partial response. An
// empty result is a hard failure of the attempt.
func responseText(resp *Response) (string, error) {
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}

// UploadAndAwait pushes the document to the remote file store and polls its
// processing state a bounded number of times. Any failure along the way is
// reported as the remote being unavailable, which switches the orchestrator
// to the inline-text strategy.
func UploadAndAwait(ctx context.Context, remote Remote, path string, attempts int, interval time.Duration) (*FileHandle, error) {
	file, err := remote.Upload(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: upload: %v", ErrRemoteUnavailable, err)
	}

	state := file.State
	for i := 0; state == FileProcessing && i < attempts; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, ctx.Err())
		case <-time.After(interval):
		}
		state, err = remote.FileStatus(ctx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: poll: %v", ErrRemoteUnavailable, err)
		}
	}
	if state != FileActive {
		return nil, fmt.Errorf("%w: file %s never became active", ErrRemoteUnavailable, file.Name)
	}
	file.State = FileActive
	return file, nil
}

// GenerateDocumentWithFile runs the file-attachment strategy: one generation
// call carrying the uploaded handle plus the whole-document prompt.
func GenerateDocumentWithFile(ctx context.Context, remote Remote, model string, file *FileHandle, prompt string, opts GenerateOptions) ([]string, error) {
	resp, err := remote.GenerateWithFile(ctx, model, prompt, file, opts)
	if err != nil {
		return nil, err
	}
	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return []string{text}, nil
}

// GenerateDocumentInline runs the inline-text strategy: one generation call
// with the prompt and the full extracted text concatenated.
func GenerateDocumentInline(ctx context.Context, remote Remote, model, prompt, text string, opts GenerateOptions) ([]string, error) {
	resp, err := remote.Generate(ctx, model, prompt+"\n\nSOURCE DOCUMENT:\n"+text, opts)
	if err != nil {
		return nil, err
	}
	out, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return []string{out}, nil
}

// GenerateSections is the chunk-per-call variant used by the sectioned mode:
// one generation call per chunk, one sanitized section per chunk. Titles
// default to positional labels.
func GenerateSections(ctx context.Context, remote Remote, model string, chunks []string, contentType string, opts GenerateOptions) ([]notes.Section, error) {
	log := logger.Get()
	sections := make([]notes.Section, 0, len(chunks))
	for i, chunk := range chunks {
		resp, err := remote.Generate(ctx, model, BuildSectionPrompt(chunk, contentType), opts)
		if err != nil {
			log.Warn().Int("chunk", i+1).Err(err).Msg("chunk generation failed")
			return nil, err
		}
		html := SanitizeHTML(resp.Text())
		if html == "" {
			html = "<p>AI returned no content.</p>"
		}
		sections = append(sections, notes.Section{
			Title: fmt.Sprintf("Part %d", i+1),
			HTML:  html,
		})
	}
	return sections, nil
}
