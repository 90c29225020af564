package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/internal/testutil"
)

func TestAccountRepository_CreateGuestAndLookup(t *testing.T) {
	client := testutil.OpenEnt(t)
	repo := NewAccountRepository(client, nil)
	ctx := context.Background()

	_, err := repo.GetByToken(ctx, "tok-1")
	require.ErrorIs(t, err, ErrNotFound)

	created, err := repo.CreateGuest(ctx, "tok-1")
	require.NoError(t, err)
	require.True(t, created.IsGuest)
	require.Equal(t, GuestEmail("tok-1"), created.Email)
	require.Equal(t, GuestPasswordHash, created.PasswordHash)

	got, err := repo.GetByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, byID.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccountRepository_DuplicateTokenIsConflict(t *testing.T) {
	client := testutil.OpenEnt(t)
	repo := NewAccountRepository(client, nil)
	ctx := context.Background()

	_, err := repo.CreateGuest(ctx, "tok-dup")
	require.NoError(t, err)

	_, err = repo.CreateGuest(ctx, "tok-dup")
	require.ErrorIs(t, err, ErrConflict)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	client := testutil.OpenEnt(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := WithTx(ctx, client, func(tx *ent.Tx) error {
		_, cerr := tx.Account.Create().
			SetEmail("tx@example.com").
			SetPasswordHash("hash").
			Save(ctx)
		require.NoError(t, cerr)
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := client.Account.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMigrateSession_MovesOnlyMatchingRows(t *testing.T) {
	client := testutil.OpenEnt(t)
	ctx := context.Background()

	guest, err := NewAccountRepository(client, nil).CreateGuest(ctx, "tok-mv")
	require.NoError(t, err)
	other, err := NewAccountRepository(client, nil).CreateGuest(ctx, "tok-keep")
	require.NoError(t, err)

	for i, owner := range []uuid.UUID{guest.ID, guest.ID, other.ID} {
		token := "tok-mv"
		if i == 2 {
			token = "tok-keep"
		}
		_, err := client.Analysis.Create().
			SetAccountID(owner).
			SetSessionToken(token).
			SetRawText("texte").
			SetStatus(string(constants.AnalysisAnalyzed)).
			Save(ctx)
		require.NoError(t, err)
	}

	target, err := client.Account.Create().
		SetEmail("target@example.com").
		SetPasswordHash("hash").
		Save(ctx)
	require.NoError(t, err)

	err = WithTx(ctx, client, func(tx *ent.Tx) error {
		moved, merr := MigrateSession(ctx, tx, "tok-mv", target.ID)
		require.NoError(t, merr)
		require.Equal(t, 2, moved)
		deleted, derr := DeleteGuestByToken(ctx, tx, "tok-mv")
		require.NoError(t, derr)
		require.Equal(t, 1, deleted)
		return nil
	})
	require.NoError(t, err)

	owned, err := client.Analysis.Query().Where(analysis.AccountID(target.ID)).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, owned)

	// the other guest's binding is untouched
	kept, err := client.Analysis.Query().Where(analysis.SessionTokenEQ("tok-keep")).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, kept)
}
