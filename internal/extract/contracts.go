// Package extract defines the text-extraction collaborator boundary.
package extract

import (
	"context"
	"time"
)

// TextExtractor converts a staged file into raw text. Failures are
// opaque to the pipeline; it only classifies them.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
}
