package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	v1 "github.com/santescan/santescan/gen/proto/santescan/v1"
	"github.com/santescan/santescan/internal/analyses"
	"github.com/santescan/santescan/internal/export"
	"github.com/santescan/santescan/internal/extract"
	"github.com/santescan/santescan/internal/identity"
	"github.com/santescan/santescan/internal/pipeline"
	"github.com/santescan/santescan/internal/repository"
	"github.com/santescan/santescan/internal/testutil"
)

type stubExtractor struct{ text string }

func (s *stubExtractor) Extract(_ context.Context, _ string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: s.text, Pages: 1, Method: "image-ocr"}, nil
}

type stubSummarizer struct{ summary string }

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	return s.summary, nil
}

func newAnalysesFixture(t *testing.T) (*AnalysesService, *ent.Client) {
	t.Helper()
	client := testutil.OpenEnt(t)
	accounts := repository.NewAccountRepository(client, nil)
	records := repository.NewAnalysisRepository(client, nil)
	pipe := pipeline.New(
		&stubExtractor{text: "Hémoglobine : 14.2 g/dL (13.0-17.0)"},
		&stubSummarizer{summary: "RAS"},
		records, nil, t.TempDir(), nil,
	)
	svc := NewAnalysesService(
		identity.NewResolver(accounts, nil),
		pipe,
		analyses.NewService(records, nil),
		export.NewService(records, nil),
		zaptest.NewLogger(t),
	)
	return svc, client
}

func TestUpload_RejectedUploadLeavesNoAccount(t *testing.T) {
	svc, client := newAnalysesFixture(t)
	ctx := context.Background()

	// unsupported format with a never-seen token
	_, err := svc.Upload(ctx, &v1.UploadRequest{
		Filename:     "rapport.docx",
		Content:      []byte("not a scan"),
		SessionToken: "tok-rejected-upload",
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// oversized payload, same expectation
	_, err = svc.Upload(ctx, &v1.UploadRequest{
		Filename:     "rapport.png",
		Content:      make([]byte, constants.MaxUploadBytes+1),
		SessionToken: "tok-rejected-upload",
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// the rejection happened before identity resolution, so no guest row
	n, err := client.Account.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestUpload_GuestFlowCreatesAccountAndAnalysis(t *testing.T) {
	svc, client := newAnalysesFixture(t)
	ctx := context.Background()

	resp, err := svc.Upload(ctx, &v1.UploadRequest{
		Filename:     "rapport.png",
		Content:      []byte("fake-image-bytes"),
		SessionToken: "tok-guest-flow",
	})
	require.NoError(t, err)
	require.True(t, resp.GetIsGuest())
	require.Equal(t, string(constants.AnalysisAnalyzed), resp.GetStatus())

	accounts, err := client.Account.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, accounts)
	records, err := client.Analysis.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, records)
}

func TestGetAnalysis_UnknownTokenCreatesNoAccount(t *testing.T) {
	svc, client := newAnalysesFixture(t)
	ctx := context.Background()

	_, err := svc.GetAnalysis(ctx, &v1.GetAnalysisRequest{
		AnalysisId:   uuid.New().String(),
		SessionToken: "tok-never-uploaded",
	})
	require.Equal(t, codes.NotFound, status.Code(err))

	n, err := client.Account.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
