package ai

import (
	"context"
	"mime"
	"path/filepath"

	genai "google.golang.org/genai"
)

// Gemini adapts the genai SDK to the Remote contract.
type Gemini struct {
	client *genai.Client
}

// NewGemini builds a Gemini-backed Remote. Fails fast when no API key is
// configured so that no remote call is ever attempted without credentials.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c}, nil
}

func (g *Gemini) Generate(ctx context.Context, model, prompt string, opts GenerateOptions) (*Response, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	return g.generate(ctx, model, contents, opts)
}

func (g *Gemini) GenerateWithFile(ctx context.Context, model, prompt string, file *FileHandle, opts GenerateOptions) (*Response, error) {
	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{FileData: &genai.FileData{FileURI: file.URI, MIMEType: file.MIMEType}},
			{Text: prompt},
		},
	}}
	return g.generate(ctx, model, contents, opts)
}

func (g *Gemini) generate(ctx context.Context, model string, contents []*genai.Content, opts GenerateOptions) (*Response, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var cfg *genai.GenerateContentConfig
	if opts.MaxOutputTokens > 0 {
		cfg = &genai.GenerateContentConfig{MaxOutputTokens: opts.MaxOutputTokens}
	}

	res, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, err
	}

	out := &Response{}
	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		if out.FinishReason == "" {
			out.FinishReason = string(cand.FinishReason)
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				out.Fragments = append(out.Fragments, part.Text)
			}
		}
	}
	// A safety-blocked response has no candidate parts; fall back to the
	// SDK's text accessor and treat whatever comes back as best effort.
	if len(out.Fragments) == 0 {
		if t := res.Text(); t != "" {
			out.Fragments = append(out.Fragments, t)
		}
	}
	return out, nil
}

func (g *Gemini) Upload(ctx context.Context, path string) (*FileHandle, error) {
	mt := mime.TypeByExtension(filepath.Ext(path))
	if mt == "" {
		mt = "application/pdf"
	}
	uploaded, err := g.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mt,
		DisplayName: filepath.Base(path),
	})
	if err != nil {
		return nil, err
	}
	return &FileHandle{
		Name:     uploaded.Name,
		URI:      uploaded.URI,
		MIMEType: mt,
		State:    mapFileState(uploaded.State),
	}, nil
}

func (g *Gemini) FileStatus(ctx context.Context, name string) (FileState, error) {
	f, err := g.client.Files.Get(ctx, name, nil)
	if err != nil {
		return FileFailed, err
	}
	return mapFileState(f.State), nil
}

func mapFileState(s genai.FileState) FileState {
	switch s {
	case genai.FileStateActive, genai.FileStateUnspecified:
		return FileActive
	case genai.FileStateFailed:
		return FileFailed
	default:
		return FileProcessing
	}
}

// Prober returns a ProbeFunc issuing a minimal generation request, used by
// model selection to find the first responsive candidate.
func (g *Gemini) Prober() ProbeFunc {
	return func(ctx context.Context, model string) error {
		_, err := g.client.Models.GenerateContent(ctx, model,
			[]*genai.Content{genai.NewContentFromText("ping", genai.RoleUser)}, nil)
		return err
	}
}
