package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/santescan/santescan/gen/proto/santescan/v1"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/internal/analyses"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/export"
	"github.com/santescan/santescan/internal/identity"
	"github.com/santescan/santescan/internal/pipeline"
)

type AnalysesService struct {
	v1.UnimplementedAnalysesServiceServer
	resolver *identity.Resolver
	pipe     *pipeline.Pipeline
	reads    *analyses.Service
	exporter *export.Service
	logger   *zap.Logger
}

func NewAnalysesService(resolver *identity.Resolver, pipe *pipeline.Pipeline, reads *analyses.Service, exporter *export.Service, logger *zap.Logger) *AnalysesService {
	return &AnalysesService{
		resolver: resolver,
		pipe:     pipe,
		reads:    reads,
		exporter: exporter,
		logger:   logger,
	}
}

// Upload implements v1.AnalysesServiceServer.
func (s *AnalysesService) Upload(ctx context.Context, req *v1.UploadRequest) (*v1.UploadResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	if strings.TrimSpace(req.GetFilename()) == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}

	up := pipeline.Upload{
		Filename: req.GetFilename(),
		Size:     int64(len(req.GetContent())),
		Content:  req.GetContent(),
	}
	// A rejected upload must leave no trace, so the shape checks run
	// before identity resolution can create a guest account.
	if err := pipeline.ValidateUpload(up); err != nil {
		return nil, common.Classify(err)
	}

	id, err := s.resolveIdentity(ctx, req.GetSessionToken())
	if err != nil {
		return nil, common.Classify(err)
	}

	a, err := s.pipe.Ingest(ctx, up, id)
	if err != nil {
		s.logger.Warn("upload failed", zap.String("filename", up.Filename), zap.Error(err))
		return nil, common.Classify(err)
	}

	return &v1.UploadResponse{
		AnalysisId: a.ID.String(),
		UploadedAt: a.UploadedAt.UTC().Format(time.RFC3339),
		Status:     a.Status,
		IsGuest:    id.Guest,
	}, nil
}

// GetAnalysis implements v1.AnalysesServiceServer.
func (s *AnalysesService) GetAnalysis(ctx context.Context, req *v1.GetAnalysisRequest) (*v1.GetAnalysisResponse, error) {
	raw := strings.TrimSpace(req.GetAnalysisId())
	if raw == "" {
		return nil, status.Error(codes.InvalidArgument, "analysis_id is required")
	}
	analysisID, err := uuid.Parse(raw)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "analysis_id must be a UUID")
	}

	// Reads resolve without storage so an unknown token cannot mint a
	// guest account.
	var principal *uuid.UUID
	if accountID, ok := AccountIDFromCtx(ctx); ok {
		principal = &accountID
	}
	id, err := s.resolver.ResolveForRead(principal, req.GetSessionToken())
	if err != nil {
		return nil, common.Classify(err)
	}

	a, err := s.reads.Get(ctx, analysisID, id)
	if err != nil {
		return nil, common.Classify(err)
	}
	return &v1.GetAnalysisResponse{Analysis: toProtoAnalysis(a)}, nil
}

// ListSessionAnalyses implements v1.AnalysesServiceServer.
func (s *AnalysesService) ListSessionAnalyses(ctx context.Context, req *v1.ListSessionAnalysesRequest) (*v1.ListSessionAnalysesResponse, error) {
	// Registered callers list by account; the token path is guest-only.
	if accountID, ok := AccountIDFromCtx(ctx); ok {
		as, err := s.reads.ListByAccount(ctx, accountID)
		if err != nil {
			return nil, common.Classify(err)
		}
		return &v1.ListSessionAnalysesResponse{Analyses: toProtoAnalyses(as)}, nil
	}

	token := strings.TrimSpace(req.GetSessionToken())
	if token == "" {
		return nil, status.Error(codes.InvalidArgument, "session_token is required")
	}
	as, err := s.reads.ListBySession(ctx, token)
	if err != nil {
		return nil, common.Classify(err)
	}
	return &v1.ListSessionAnalysesResponse{Analyses: toProtoAnalyses(as)}, nil
}

// ExportAnalyses implements v1.AnalysesServiceServer.
func (s *AnalysesService) ExportAnalyses(ctx context.Context, _ *v1.ExportAnalysesRequest) (*v1.ExportAnalysesResponse, error) {
	accountID, ok := AccountIDFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "export requires a registered account")
	}

	data, err := s.exporter.ExportAnalysesXLSX(ctx, accountID)
	if err != nil {
		s.logger.Warn("export failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return nil, common.Classify(err)
	}
	return &v1.ExportAnalysesResponse{Xlsx: data}, nil
}

func (s *AnalysesService) resolveIdentity(ctx context.Context, sessionToken string) (identity.Identity, error) {
	var principal *uuid.UUID
	if accountID, ok := AccountIDFromCtx(ctx); ok {
		principal = &accountID
	}
	return s.resolver.Resolve(ctx, principal, sessionToken)
}

func toProtoAnalyses(as []*ent.Analysis) []*v1.Analysis {
	out := make([]*v1.Analysis, 0, len(as))
	for _, a := range as {
		out = append(out, toProtoAnalysis(a))
	}
	return out
}

func toProtoAnalysis(a *ent.Analysis) *v1.Analysis {
	p := &v1.Analysis{
		Id:         a.ID.String(),
		UploadedAt: a.UploadedAt.UTC().Format(time.RFC3339),
		RawText:    a.RawText,
		Status:     a.Status,
		Disclaimer: a.Disclaimer,
	}
	if a.AiSummary != nil {
		p.AiSummary = *a.AiSummary
	}
	for _, d := range a.Edges.Details {
		p.Details = append(p.Details, toProtoDetail(d))
	}
	return p
}

func toProtoDetail(d *ent.AnalysisDetail) *v1.AnalysisDetail {
	p := &v1.AnalysisDetail{
		ParameterName:  d.ParameterName,
		ReferenceRange: d.ReferenceRange,
		Status:         d.Status,
	}
	p.Value = d.Value
	p.Unit = d.Unit
	return p
}
