// Package export produces XLSX workbooks for a registered account's
// analyses.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/santescan/santescan/internal/repository"
)

// Service is a tiny façade over the analysis store that produces XLSX bytes.
type Service struct {
	analyses repository.AnalysisRepository
	logger   *slog.Logger
}

func NewService(analyses repository.AnalysisRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{analyses: analyses, logger: logger}
}

// ExportAnalysesXLSX returns an XLSX workbook (as bytes) with one row
// per analysis owned by the account, newest first.
func (s *Service) ExportAnalysesXLSX(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.analyses.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Analyses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded At",
		"Status",
		"Summary",
		"Disclaimer",
		"Details",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, a := range recs {
		summary := ""
		if a.AiSummary != nil {
			summary = *a.AiSummary
		}
		values := []any{
			a.UploadedAt.UTC().Format(time.RFC3339),
			a.Status,
			summary,
			a.Disclaimer,
			len(a.Edges.Details),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// drop the default sheet if excelize created one
	if name := f.GetSheetName(0); name != sheet {
		_ = f.DeleteSheet(name)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("analyses exported",
		"account_id", accountID,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
