// Package llm defines the summarization collaborator boundary and
// shared HTTP plumbing for model backends.
package llm

import "context"

// Summarizer turns raw extracted text into a short patient-facing
// narrative. Transport errors, non-success responses and unparseable
// payloads all surface as errors; callers decide severity and never
// retry here.
type Summarizer interface {
	Summarize(ctx context.Context, rawText string) (string, error)
}
