package ai

import (
	"context"
	"time"
)

// Response is the normalized shape of a remote generation result. Fragments
// carries the text of every content part across all candidates, in order;
// a blocked or partial response simply yields fewer (or zero) fragments.
type Response struct {
	Fragments    []string
	FinishReason string
}

// Text concatenates all available fragments.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var out string
	for _, f := range r.Fragments {
		out += f
	}
	return out
}

// FileState is the processing status of an uploaded attachment.
type FileState int

const (
	FileProcessing FileState = iota
	FileActive
	FileFailed
)

// FileHandle identifies an uploaded document on the remote service.
type FileHandle struct {
	Name     string
	URI      string
	MIMEType string
	State    FileState
}

// GenerateOptions bounds a single generation call.
type GenerateOptions struct {
	Timeout         time.Duration
	MaxOutputTokens int32
}

// Remote is the contract with the generative-language service. The concrete
// implementation wraps the Gemini SDK; tests substitute fakes.
type Remote interface {
	// Generate issues a text-only generation request against model.
	Generate(ctx context.Context, model, prompt string, opts GenerateOptions) (*Response, error)

	// GenerateWithFile issues a generation request carrying an uploaded
	// file attachment alongside the prompt.
	GenerateWithFile(ctx context.Context, model, prompt string, file *FileHandle, opts GenerateOptions) (*Response, error)

	// Upload pushes a local document to the remote file store.
	Upload(ctx context.Context, path string) (*FileHandle, error)

	// FileStatus re-reads the processing state of an uploaded file.
	FileStatus(ctx context.Context, name string) (FileState, error)
}

// ProbeFunc checks whether a single model identifier answers a trivial
// request. Injected into SelectModel so candidate probing stays testable
// without a live service.
type ProbeFunc func(ctx context.Context, model string) error
