package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/extract"
	"github.com/santescan/santescan/internal/identity"
	"github.com/santescan/santescan/internal/repository"
	"github.com/santescan/santescan/internal/testutil"
)

type fakeExtractor struct {
	text string
	err  error
	path string
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	f.path = path
	if f.err != nil {
		return extract.TextExtractionResult{}, f.err
	}
	return extract.TextExtractionResult{Text: f.text, Pages: 1, Method: "image-ocr"}, nil
}

type fakeSummarizer struct {
	summary string
	err     error
	got     string
}

func (f *fakeSummarizer) Summarize(_ context.Context, rawText string) (string, error) {
	f.got = rawText
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

func newTestPipeline(t *testing.T, ex *fakeExtractor, sum *fakeSummarizer) (*Pipeline, *ent.Client, string) {
	t.Helper()
	client := testutil.OpenEnt(t)
	repoAnalyses := repository.NewAnalysisRepository(client, nil)
	scratch := t.TempDir()
	return New(ex, sum, repoAnalyses, nil, scratch, nil), client, scratch
}

func guestIdentity(t *testing.T, client *ent.Client, token string) identity.Identity {
	t.Helper()
	acct, err := client.Account.Create().
		SetEmail(repository.GuestEmail(token)).
		SetPasswordHash(repository.GuestPasswordHash).
		SetIsGuest(true).
		SetSessionToken(token).
		Save(context.Background())
	require.NoError(t, err)
	return identity.Identity{AccountID: acct.ID, SessionToken: token, Guest: true}
}

func scratchEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "staged files must not outlive the request")
}

func TestIngest_RejectsUnsupportedExtension(t *testing.T) {
	ex := &fakeExtractor{text: "anything"}
	p, client, scratch := newTestPipeline(t, ex, &fakeSummarizer{summary: "s"})
	id := guestIdentity(t, client, "tok-ext")

	_, err := p.Ingest(context.Background(), Upload{Filename: "report.docx", Size: 3, Content: []byte("abc")}, id)
	require.Error(t, err)
	require.Equal(t, common.CauseInvalidUpload, common.CauseOf(err))
	require.Empty(t, ex.path, "validation must fail before staging")

	n, countErr := client.Analysis.Query().Count(context.Background())
	require.NoError(t, countErr)
	require.Zero(t, n)
	scratchEmpty(t, scratch)
}

func TestIngest_RejectsEmptyAndOversized(t *testing.T) {
	p, client, _ := newTestPipeline(t, &fakeExtractor{}, &fakeSummarizer{})
	id := guestIdentity(t, client, "tok-size")

	_, err := p.Ingest(context.Background(), Upload{Filename: "a.pdf"}, id)
	require.Equal(t, common.CauseInvalidUpload, common.CauseOf(err))

	big := bytes.Repeat([]byte{'x'}, constants.MaxUploadBytes+1)
	_, err = p.Ingest(context.Background(), Upload{Filename: "a.pdf", Size: int64(len(big)), Content: big}, id)
	require.Equal(t, common.CauseInvalidUpload, common.CauseOf(err))
}

func TestIngest_BlankExtractionStoresNothing(t *testing.T) {
	ex := &fakeExtractor{text: "  \n\t "}
	p, client, scratch := newTestPipeline(t, ex, &fakeSummarizer{summary: "unused"})
	id := guestIdentity(t, client, "tok-blank")

	_, err := p.Ingest(context.Background(), Upload{Filename: "scan.jpg", Size: 4, Content: []byte("data")}, id)
	require.Equal(t, common.CauseNoTextExtracted, common.CauseOf(err))

	n, countErr := client.Analysis.Query().Count(context.Background())
	require.NoError(t, countErr)
	require.Zero(t, n)
	scratchEmpty(t, scratch)
}

func TestIngest_ExtractionFailure(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("tesseract exploded")}
	p, client, scratch := newTestPipeline(t, ex, &fakeSummarizer{})
	id := guestIdentity(t, client, "tok-exfail")

	_, err := p.Ingest(context.Background(), Upload{Filename: "scan.png", Size: 4, Content: []byte("data")}, id)
	require.Equal(t, common.CauseExtractionFailed, common.CauseOf(err))

	n, countErr := client.Analysis.Query().Count(context.Background())
	require.NoError(t, countErr)
	require.Zero(t, n)
	scratchEmpty(t, scratch)
}

func TestIngest_SummarizerDownStoresNothing(t *testing.T) {
	ex := &fakeExtractor{text: "Hémoglobine : 13.5 g/dL"}
	sum := &fakeSummarizer{err: errors.New("connection refused")}
	p, client, scratch := newTestPipeline(t, ex, sum)
	id := guestIdentity(t, client, "tok-llm")

	_, err := p.Ingest(context.Background(), Upload{Filename: "labs.pdf", Size: 4, Content: []byte("data")}, id)
	require.Equal(t, common.CauseSummarizationUnavailable, common.CauseOf(err))
	require.Equal(t, ex.text, sum.got)

	n, countErr := client.Analysis.Query().Count(context.Background())
	require.NoError(t, countErr)
	require.Zero(t, n)
	scratchEmpty(t, scratch)
}

func TestIngest_SuccessGuest(t *testing.T) {
	ex := &fakeExtractor{text: "Hémoglobine : 13.5 g/dL (12-16)"}
	sum := &fakeSummarizer{summary: "Tout est normal."}
	p, client, scratch := newTestPipeline(t, ex, sum)
	id := guestIdentity(t, client, "tok-ok")

	a, err := p.Ingest(context.Background(), Upload{Filename: "labs.pdf", Size: 4, Content: []byte("data")}, id)
	require.NoError(t, err)
	require.Equal(t, string(constants.AnalysisAnalyzed), a.Status)
	require.Equal(t, ex.text, a.RawText)
	require.NotNil(t, a.AiSummary)
	require.Equal(t, "Tout est normal.", *a.AiSummary)
	require.Equal(t, constants.MedicalDisclaimer, a.Disclaimer)
	require.NotNil(t, a.SessionToken)
	require.Equal(t, "tok-ok", *a.SessionToken)
	require.Equal(t, id.AccountID, a.AccountID)
	scratchEmpty(t, scratch)

	// staged file kept the source extension for dispatch
	require.Contains(t, ex.path, ".pdf")
}

func TestIngest_SuccessRegisteredHasNoToken(t *testing.T) {
	ex := &fakeExtractor{text: "Glycémie : 0.95 g/L"}
	p, client, _ := newTestPipeline(t, ex, &fakeSummarizer{summary: "ok"})

	acct, err := client.Account.Create().
		SetEmail("user@example.com").
		SetPasswordHash("hash").
		Save(context.Background())
	require.NoError(t, err)
	id := identity.Identity{AccountID: acct.ID}

	a, err := p.Ingest(context.Background(), Upload{Filename: "labs.jpeg", Size: 4, Content: []byte("data")}, id)
	require.NoError(t, err)
	require.Nil(t, a.SessionToken)
	require.Equal(t, acct.ID, a.AccountID)
}

func TestIngest_UnknownAccountFailsPersist(t *testing.T) {
	ex := &fakeExtractor{text: "some text"}
	p, _, scratch := newTestPipeline(t, ex, &fakeSummarizer{summary: "ok"})
	id := identity.Identity{AccountID: uuid.New()}

	_, err := p.Ingest(context.Background(), Upload{Filename: "x.png", Size: 1, Content: []byte("d")}, id)
	require.Error(t, err)
	require.Equal(t, common.CauseInternal, common.CauseOf(err))
	scratchEmpty(t, scratch)
}
