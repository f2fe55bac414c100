// Package drafter runs the single-shot draft action: validate the Draft
// Request, compose the instruction, perform one generation call, and fold
// every outcome into a displayable Result.
package drafter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scholarmail/ScholarDraft/internal/composer"
	"github.com/scholarmail/ScholarDraft/internal/models"
)

// DefaultGenerateTimeout bounds the wait on the external generation call.
// Expiry is treated as a generation failure, not a fault.
const DefaultGenerateTimeout = 60 * time.Second

// Generator defines how to produce a draft from the composed prompts.
// *genai.Client satisfies it.
type Generator interface {
	GenerateDraft(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Result is the state record of one draft action: exactly one of Draft or
// Err is set, never both. A new action always produces a fresh Result, so
// previous error state never leaks into the next attempt.
type Result struct {
	Draft string `json:"draft,omitempty"`
	Err   string `json:"error,omitempty"`
}

// OK reports whether the action produced a draft.
func (r Result) OK() bool {
	return r.Err == ""
}

// Service performs draft actions. It holds no per-user state; concurrent
// callers are isolated by their own Draft Request instances.
type Service struct {
	gen     Generator
	timeout time.Duration
}

// Option configures the Service.
type Option func(*Service)

// WithTimeout overrides the bounded wait applied to the generation call.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService creates a draft service around the given generator. A nil
// generator means generation is unconfigured; actions then report a
// configuration error without attempting any call.
func NewService(gen Generator, opts ...Option) *Service {
	s := &Service{gen: gen, timeout: DefaultGenerateTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether a generator is available.
func (s *Service) Configured() bool {
	return s.gen != nil
}

// Draft executes one generation attempt. All failure paths terminate in a
// displayable error string; nothing is retried and nothing propagates as a
// fault to the caller.
func (s *Service) Draft(ctx context.Context, req models.DraftRequest) Result {
	if s.gen == nil {
		slog.Warn("Drafter.Draft: generation attempted without configured client")
		return Result{Err: "OpenAI API not configured. Please set your API key as an environment variable."}
	}
	if err := req.Validate(); err != nil {
		slog.Warn("Drafter.Draft: validation failed", "error", err, "intent", req.Intent)
		return Result{Err: err.Error()}
	}

	prompt := composer.Compose(req)
	slog.Debug("Drafter.Draft: composed instruction", "intent", req.Intent, "prompt_len", len(prompt))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	draft, err := s.gen.GenerateDraft(ctx, composer.SystemPrompt, prompt)
	if err != nil {
		slog.Error("Drafter.Draft: generation failed", "error", err, "intent", req.Intent)
		return Result{Err: fmt.Sprintf("Error generating email draft: %v", err)}
	}

	slog.Info("Drafter.Draft: draft generated", "intent", req.Intent, "draft_len", len(draft))
	return Result{Draft: draft}
}
