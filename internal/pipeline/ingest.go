// Package pipeline orchestrates one upload from validation to a
// durable analysis record.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/internal/async"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/extract"
	"github.com/santescan/santescan/internal/identity"
	"github.com/santescan/santescan/internal/llm"
	"github.com/santescan/santescan/internal/repository"
)

// Upload is one inbound file, fully buffered.
type Upload struct {
	Filename string
	Size     int64
	Content  []byte
}

// Pipeline runs validate -> stage -> extract -> summarize -> persist,
// sequentially, one invocation per request. The staged copy is
// released on every exit path.
type Pipeline struct {
	extractor  extract.TextExtractor
	summarizer llm.Summarizer
	analyses   repository.AnalysisRepository
	queue      async.Queue // optional; detail parsing for durable rows
	scratchDir string
	logger     *slog.Logger
}

func New(extractor extract.TextExtractor, summarizer llm.Summarizer, analyses repository.AnalysisRepository, queue async.Queue, scratchDir string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	return &Pipeline{
		extractor:  extractor,
		summarizer: summarizer,
		analyses:   analyses,
		queue:      queue,
		scratchDir: scratchDir,
		logger:     logger,
	}
}

// Ingest processes one upload for an already-resolved identity and
// returns the persisted analysis. Validation failures are reported
// before any resource is acquired. Extraction and summarization
// failures are classified, never retried.
func (p *Pipeline) Ingest(ctx context.Context, up Upload, id identity.Identity) (*ent.Analysis, error) {
	if err := ValidateUpload(up); err != nil {
		return nil, err
	}

	path, err := p.stage(up)
	if err != nil {
		return nil, common.WrapFault(common.CauseInternal, "staging upload", err)
	}
	defer p.release(path)

	p.logger.Info("ingest started",
		"req_id", common.RequestIDFromContext(ctx),
		"account_id", id.AccountID,
		"filename", up.Filename,
		"size", len(up.Content),
		"guest", id.Guest,
	)

	res, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return nil, common.WrapFault(common.CauseExtractionFailed,
			"impossible d'extraire le texte du document", err)
	}
	if strings.TrimSpace(res.Text) == "" {
		// a blank result is indistinguishable from total failure; never
		// store an empty analysis
		return nil, common.NewFault(common.CauseNoTextExtracted,
			"aucun texte extrait, vérifiez la qualité du document")
	}

	summary, err := p.summarizer.Summarize(ctx, res.Text)
	if err != nil {
		return nil, common.WrapFault(common.CauseSummarizationUnavailable,
			"le service d'analyse est temporairement indisponible", err)
	}

	var token *string
	if id.Guest {
		token = &id.SessionToken
	}
	a, err := p.analyses.Create(ctx, repository.CreateAnalysisParams{
		AccountID:    id.AccountID,
		SessionToken: token,
		RawText:      res.Text,
		AiSummary:    summary,
		Status:       constants.AnalysisAnalyzed,
		UploadedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, common.WrapFault(common.CauseInternal, "persisting analysis", err)
	}

	p.logger.Info("ingest succeeded",
		"req_id", common.RequestIDFromContext(ctx),
		"analysis_id", a.ID,
		"account_id", id.AccountID,
		"method", res.Method,
		"pages", res.Pages,
	)

	if p.queue != nil {
		if err := p.queue.Enqueue(ctx, async.Job{AnalysisID: a.ID, SubmittedAt: time.Now()}); err != nil {
			// the analysis is durable; missing detail lines are acceptable
			p.logger.Warn("detail parse enqueue failed", "analysis_id", a.ID, "error", err)
		}
	}
	return a, nil
}

// ValidateUpload checks an upload's shape without side effects. Callers
// run it before any account or file resource is touched; Ingest repeats
// it so no entry point can bypass the checks.
func ValidateUpload(up Upload) error {
	if len(up.Content) == 0 {
		return common.NewFault(common.CauseInvalidUpload, "aucun fichier reçu")
	}
	ext := filepath.Ext(up.Filename)
	if !constants.IsAllowedExt(ext) {
		return common.NewFault(common.CauseInvalidUpload,
			"format non supporté, formats acceptés : JPG, JPEG, PNG, PDF")
	}
	if len(up.Content) > constants.MaxUploadBytes || up.Size > constants.MaxUploadBytes {
		return common.NewFault(common.CauseInvalidUpload,
			fmt.Sprintf("fichier trop volumineux (max %d MB)", constants.MaxUploadBytes/(1<<20)))
	}
	return nil
}

// stage copies the upload to a transient location under a fresh name.
// The original extension is preserved because the extraction engine
// dispatches on it.
func (p *Pipeline) stage(up Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	f, err := os.CreateTemp(p.scratchDir, "santescan-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(up.Content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// release removes the staged copy. Best effort: a failure is logged,
// never escalated, so cleanup cannot mask the primary failure.
func (p *Pipeline) release(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("failed to remove staged upload", "path", path, "error", err)
	}
}
