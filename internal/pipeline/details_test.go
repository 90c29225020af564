package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
	"github.com/santescan/santescan/internal/repository"
	"github.com/santescan/santescan/internal/testutil"
)

func TestParseDetails_Lines(t *testing.T) {
	raw := "LABORATOIRE DUPONT\n" +
		"Hémoglobine : 13.5 g/dL (12 - 16)\n" +
		"Glycémie : 1,40 g/L (0,70 - 1,10)\n" +
		"Leucocytes 3.1 giga/L (4.0 - 10.0)\n" +
		"Plaquettes : 900 giga/L (150 - 400)\n" +
		"Ferritine : 85 µg/L\n" +
		"Voir page suivante\n" +
		"12345\n"

	details := ParseDetails(raw)
	require.Len(t, details, 5)

	byName := map[string]ParsedDetail{}
	for _, d := range details {
		byName[d.Name] = d
	}

	hb := byName["Hémoglobine"]
	require.NotNil(t, hb.Value)
	require.InDelta(t, 13.5, *hb.Value, 0.001)
	require.NotNil(t, hb.Unit)
	require.Equal(t, "g/dL", *hb.Unit)
	require.Equal(t, "12 - 16", hb.ReferenceRange)
	require.Equal(t, constants.DetailNormal, hb.Status)

	// comma decimals parse and classify against the range
	gly := byName["Glycémie"]
	require.InDelta(t, 1.40, *gly.Value, 0.001)
	require.Equal(t, constants.DetailHigh, gly.Status)

	leu := byName["Leucocytes"]
	require.Equal(t, constants.DetailLow, leu.Status)

	// 900 exceeds the upper bound by more than the range width
	plt := byName["Plaquettes"]
	require.Equal(t, constants.DetailCritical, plt.Status)

	// no range means no judgment
	fer := byName["Ferritine"]
	require.Equal(t, constants.DetailNormal, fer.Status)
	require.Empty(t, fer.ReferenceRange)
}

func TestParseDetails_EmptyInput(t *testing.T) {
	require.Empty(t, ParseDetails(""))
	require.Empty(t, ParseDetails("rien d'exploitable ici"))
}

func TestClassifyValue(t *testing.T) {
	require.Equal(t, constants.DetailNormal, classifyValue(5, 4, 10))
	require.Equal(t, constants.DetailLow, classifyValue(3.5, 4, 10))
	require.Equal(t, constants.DetailHigh, classifyValue(11, 4, 10))
	require.Equal(t, constants.DetailCritical, classifyValue(30, 4, 10))
	require.Equal(t, constants.DetailCritical, classifyValue(-3, 4, 10))
	// boundaries are inclusive
	require.Equal(t, constants.DetailNormal, classifyValue(4, 4, 10))
	require.Equal(t, constants.DetailNormal, classifyValue(10, 4, 10))
}

func TestDetailStage_RunIsIdempotent(t *testing.T) {
	client := testutil.OpenEnt(t)
	ctx := context.Background()

	acct, err := client.Account.Create().
		SetEmail(repository.GuestEmail("tok-stage")).
		SetPasswordHash(repository.GuestPasswordHash).
		SetIsGuest(true).
		SetSessionToken("tok-stage").
		Save(ctx)
	require.NoError(t, err)

	a, err := client.Analysis.Create().
		SetAccountID(acct.ID).
		SetRawText("Hémoglobine : 13.5 g/dL (12 - 16)\nGlycémie : 0,95 g/L (0,70 - 1,10)").
		SetStatus(string(constants.AnalysisAnalyzed)).
		Save(ctx)
	require.NoError(t, err)

	stage := NewDetailStage(client, nil)
	require.NoError(t, stage.Run(ctx, a.ID))
	require.NoError(t, stage.Run(ctx, a.ID))

	n, err := client.AnalysisDetail.Query().
		Where(analysisdetail.AnalysisID(a.ID)).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestDetailStage_NoLinesIsNotAnError(t *testing.T) {
	client := testutil.OpenEnt(t)
	ctx := context.Background()

	acct, err := client.Account.Create().
		SetEmail("u@example.com").
		SetPasswordHash("hash").
		Save(ctx)
	require.NoError(t, err)

	a, err := client.Analysis.Create().
		SetAccountID(acct.ID).
		SetRawText("compte rendu narratif sans valeurs").
		SetStatus(string(constants.AnalysisAnalyzed)).
		Save(ctx)
	require.NoError(t, err)

	stage := NewDetailStage(client, nil)
	require.NoError(t, stage.Run(ctx, a.ID))

	n, err := client.AnalysisDetail.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
