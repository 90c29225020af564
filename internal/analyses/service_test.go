package analyses

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/identity"
	"github.com/santescan/santescan/internal/repository"
	"github.com/santescan/santescan/internal/testutil"
)

type fixture struct {
	client *ent.Client
	svc    *Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	client := testutil.OpenEnt(t)
	return fixture{
		client: client,
		svc:    NewService(repository.NewAnalysisRepository(client, nil), nil),
	}
}

func (f fixture) guest(t *testing.T, token string) *ent.Account {
	t.Helper()
	acct, err := f.client.Account.Create().
		SetEmail(repository.GuestEmail(token)).
		SetPasswordHash(repository.GuestPasswordHash).
		SetIsGuest(true).
		SetSessionToken(token).
		Save(context.Background())
	require.NoError(t, err)
	return acct
}

func (f fixture) registered(t *testing.T, email string) *ent.Account {
	t.Helper()
	acct, err := f.client.Account.Create().
		SetEmail(email).
		SetPasswordHash("hash").
		Save(context.Background())
	require.NoError(t, err)
	return acct
}

func (f fixture) analysis(t *testing.T, owner *ent.Account, token string, uploadedAt time.Time) *ent.Analysis {
	t.Helper()
	b := f.client.Analysis.Create().
		SetAccountID(owner.ID).
		SetRawText("Hémoglobine : 13.5 g/dL").
		SetStatus(string(constants.AnalysisAnalyzed)).
		SetUploadedAt(uploadedAt)
	if token != "" {
		b = b.SetSessionToken(token)
	}
	a, err := b.Save(context.Background())
	require.NoError(t, err)
	return a
}

func TestGet_GuestReadsOwnAnalysis(t *testing.T) {
	f := newFixture(t)
	g := f.guest(t, "tok-a")
	a := f.analysis(t, g, "tok-a", time.Now())

	got, err := f.svc.Get(context.Background(), a.ID,
		identity.Identity{AccountID: g.ID, SessionToken: "tok-a", Guest: true})
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
}

func TestGet_GuestCannotReadOtherToken(t *testing.T) {
	f := newFixture(t)
	g1 := f.guest(t, "tok-1")
	f.guest(t, "tok-2")
	a := f.analysis(t, g1, "tok-1", time.Now())

	_, err := f.svc.Get(context.Background(), a.ID,
		identity.Identity{AccountID: g1.ID, SessionToken: "tok-2", Guest: true})
	require.Equal(t, common.CauseAccessDenied, common.CauseOf(err))
}

func TestGet_RegisteredCannotReadOthers(t *testing.T) {
	f := newFixture(t)
	owner := f.registered(t, "owner@example.com")
	stranger := f.registered(t, "stranger@example.com")
	a := f.analysis(t, owner, "", time.Now())

	_, err := f.svc.Get(context.Background(), a.ID,
		identity.Identity{AccountID: stranger.ID})
	require.Equal(t, common.CauseAccessDenied, common.CauseOf(err))

	got, err := f.svc.Get(context.Background(), a.ID, identity.Identity{AccountID: owner.ID})
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
}

func TestGet_MissingIsNotFound(t *testing.T) {
	f := newFixture(t)
	g := f.guest(t, "tok-x")

	_, err := f.svc.Get(context.Background(), uuid.New(),
		identity.Identity{AccountID: g.ID, SessionToken: "tok-x", Guest: true})
	require.Equal(t, common.CauseNotFound, common.CauseOf(err))
}

func TestGet_LoadsDetails(t *testing.T) {
	f := newFixture(t)
	g := f.guest(t, "tok-d")
	a := f.analysis(t, g, "tok-d", time.Now())
	_, err := f.client.AnalysisDetail.Create().
		SetAnalysisID(a.ID).
		SetParameterName("Hémoglobine").
		SetValue(13.5).
		SetUnit("g/dL").
		SetReferenceRange("12 - 16").
		SetStatus(string(constants.DetailNormal)).
		Save(context.Background())
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), a.ID,
		identity.Identity{AccountID: g.ID, SessionToken: "tok-d", Guest: true})
	require.NoError(t, err)
	require.Len(t, got.Edges.Details, 1)
	require.Equal(t, "Hémoglobine", got.Edges.Details[0].ParameterName)
}

func TestListBySession_NewestFirst(t *testing.T) {
	f := newFixture(t)
	g := f.guest(t, "tok-l")
	base := time.Now().Add(-time.Hour)
	old := f.analysis(t, g, "tok-l", base)
	mid := f.analysis(t, g, "tok-l", base.Add(10*time.Minute))
	recent := f.analysis(t, g, "tok-l", base.Add(20*time.Minute))

	// noise under another token
	other := f.guest(t, "tok-other")
	f.analysis(t, other, "tok-other", base.Add(30*time.Minute))

	list, err := f.svc.ListBySession(context.Background(), "tok-l")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, recent.ID, list[0].ID)
	require.Equal(t, mid.ID, list[1].ID)
	require.Equal(t, old.ID, list[2].ID)
}

func TestListBySession_RequiresToken(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ListBySession(context.Background(), "")
	require.Equal(t, common.CauseIdentityRequired, common.CauseOf(err))
}

func TestListByAccount(t *testing.T) {
	f := newFixture(t)
	owner := f.registered(t, "o@example.com")
	base := time.Now().Add(-time.Hour)
	f.analysis(t, owner, "", base)
	newest := f.analysis(t, owner, "", base.Add(time.Minute))

	list, err := f.svc.ListByAccount(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newest.ID, list[0].ID)

	empty, err := f.svc.ListByAccount(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, empty)
}
