package identity

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/repository"
	"github.com/santescan/santescan/internal/testutil"
)

func TestResolve_PrincipalWins(t *testing.T) {
	r := NewResolver(nil, nil) // repo is never touched on the principal path
	want := uuid.New()

	id, err := r.Resolve(context.Background(), &want, "some-token")
	require.NoError(t, err)
	require.Equal(t, want, id.AccountID)
	require.False(t, id.Guest)
	require.Empty(t, id.SessionToken)
}

func TestResolve_NoCredentials(t *testing.T) {
	r := NewResolver(nil, nil)

	_, err := r.Resolve(context.Background(), nil, "   ")
	require.Error(t, err)
	require.Equal(t, common.CauseIdentityRequired, common.CauseOf(err))
}

func TestResolve_OverlongTokenIsClientError(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewResolver(repository.NewAccountRepository(client, nil), nil)
	ctx := context.Background()

	_, err := r.Resolve(ctx, nil, strings.Repeat("a", constants.MaxSessionTokenLen+50))
	require.Error(t, err)
	require.Equal(t, common.CauseIdentityRequired, common.CauseOf(err))

	// the rejection happens before any account is created
	n, err := client.Account.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestResolveForRead_NeverCreatesAccount(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewResolver(repository.NewAccountRepository(client, nil), nil)
	ctx := context.Background()

	id, err := r.ResolveForRead(nil, "never-seen-token")
	require.NoError(t, err)
	require.True(t, id.Guest)
	require.Equal(t, "never-seen-token", id.SessionToken)

	n, err := client.Account.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestResolveForRead_PrincipalAndValidation(t *testing.T) {
	r := NewResolver(nil, nil)
	want := uuid.New()

	id, err := r.ResolveForRead(&want, "ignored-token")
	require.NoError(t, err)
	require.Equal(t, want, id.AccountID)
	require.False(t, id.Guest)

	_, err = r.ResolveForRead(nil, "  ")
	require.Equal(t, common.CauseIdentityRequired, common.CauseOf(err))

	_, err = r.ResolveForRead(nil, strings.Repeat("b", constants.MaxSessionTokenLen+1))
	require.Equal(t, common.CauseIdentityRequired, common.CauseOf(err))
}

func TestResolve_GuestCreateThenReuse(t *testing.T) {
	client := testutil.OpenEnt(t)
	accounts := repository.NewAccountRepository(client, nil)
	r := NewResolver(accounts, nil)
	ctx := context.Background()

	first, err := r.Resolve(ctx, nil, "sess-abc")
	require.NoError(t, err)
	require.True(t, first.Guest)
	require.Equal(t, "sess-abc", first.SessionToken)

	acct, err := client.Account.Get(ctx, first.AccountID)
	require.NoError(t, err)
	require.True(t, acct.IsGuest)
	require.Equal(t, repository.GuestEmail("sess-abc"), acct.Email)
	require.Equal(t, repository.GuestPasswordHash, acct.PasswordHash)

	// same token resolves to the same account, no second row
	second, err := r.Resolve(ctx, nil, "sess-abc")
	require.NoError(t, err)
	require.Equal(t, first.AccountID, second.AccountID)

	n, err := client.Account.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestResolve_DistinctTokensDistinctAccounts(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewResolver(repository.NewAccountRepository(client, nil), nil)
	ctx := context.Background()

	a, err := r.Resolve(ctx, nil, "sess-1")
	require.NoError(t, err)
	b, err := r.Resolve(ctx, nil, "sess-2")
	require.NoError(t, err)
	require.NotEqual(t, a.AccountID, b.AccountID)
}

// raceAccounts simulates losing the guest insert race: the first
// CreateGuest returns ErrConflict, after which the winner's row is
// fetchable.
type raceAccounts struct {
	repository.AccountRepository
	winner   *ent.Account
	inserted bool
}

func (f *raceAccounts) GetByToken(_ context.Context, _ string) (*ent.Account, error) {
	if !f.inserted {
		return nil, repository.ErrNotFound
	}
	return f.winner, nil
}

func (f *raceAccounts) CreateGuest(_ context.Context, _ string) (*ent.Account, error) {
	f.inserted = true
	return nil, repository.ErrConflict
}

func TestResolve_GuestInsertRaceUsesWinner(t *testing.T) {
	winner := &ent.Account{ID: uuid.New(), IsGuest: true}
	r := NewResolver(&raceAccounts{winner: winner}, nil)

	id, err := r.Resolve(context.Background(), nil, "sess-race")
	require.NoError(t, err)
	require.Equal(t, winner.ID, id.AccountID)
	require.True(t, id.Guest)
}
