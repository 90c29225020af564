package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/internal/repository"
	"github.com/santescan/santescan/internal/testutil"
)

func seedAccount(t *testing.T, client *ent.Client, email string) *ent.Account {
	t.Helper()
	acct, err := client.Account.Create().
		SetEmail(email).
		SetPasswordHash("hash").
		Save(context.Background())
	require.NoError(t, err)
	return acct
}

func TestExportAnalysesXLSX(t *testing.T) {
	client := testutil.OpenEnt(t)
	svc := NewService(repository.NewAnalysisRepository(client, nil), nil)
	ctx := context.Background()

	acct := seedAccount(t, client, "export@example.com")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := client.Analysis.Create().
		SetAccountID(acct.ID).
		SetRawText("ancien").
		SetAiSummary("Premier bilan.").
		SetStatus(string(constants.AnalysisAnalyzed)).
		SetUploadedAt(base).
		Save(ctx)
	require.NoError(t, err)
	recent, err := client.Analysis.Create().
		SetAccountID(acct.ID).
		SetRawText("récent").
		SetAiSummary("Second bilan.").
		SetStatus(string(constants.AnalysisAnalyzed)).
		SetUploadedAt(base.Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.AnalysisDetail.Create().
		SetAnalysisID(recent.ID).
		SetParameterName("Hémoglobine").
		SetValue(13.5).
		SetStatus(string(constants.DetailNormal)).
		Save(ctx)
	require.NoError(t, err)

	// noise from another account must not leak into the workbook
	other := seedAccount(t, client, "other@example.com")
	_, err = client.Analysis.Create().
		SetAccountID(other.ID).
		SetRawText("autre").
		SetStatus(string(constants.AnalysisAnalyzed)).
		Save(ctx)
	require.NoError(t, err)

	data, err := svc.ExportAnalysesXLSX(ctx, acct.ID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, []string{"Analyses"}, f.GetSheetList())

	rows, err := f.GetRows("Analyses")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Uploaded At", "Status", "Summary", "Disclaimer", "Details"}, rows[0])

	// newest first
	require.Equal(t, "Second bilan.", rows[1][2])
	require.Equal(t, "Premier bilan.", rows[2][2])
	require.Equal(t, constants.MedicalDisclaimer, rows[1][3])
	require.Equal(t, base.Add(time.Hour).Format(time.RFC3339), rows[1][0])
	require.Equal(t, "1", rows[1][4])
	require.Equal(t, "0", rows[2][4])
}

func TestExportAnalysesXLSX_NoRows(t *testing.T) {
	client := testutil.OpenEnt(t)
	svc := NewService(repository.NewAnalysisRepository(client, nil), nil)

	acct := seedAccount(t, client, "empty@example.com")
	data, err := svc.ExportAnalysesXLSX(context.Background(), acct.ID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Analyses")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
