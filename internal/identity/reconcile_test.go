package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/repository"
	"github.com/santescan/santescan/internal/testutil"
)

func seedGuestWithAnalyses(t *testing.T, client *ent.Client, token string, n int) *ent.Account {
	t.Helper()
	ctx := context.Background()
	guest, err := client.Account.Create().
		SetEmail(repository.GuestEmail(token)).
		SetPasswordHash(repository.GuestPasswordHash).
		SetIsGuest(true).
		SetSessionToken(token).
		Save(ctx)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		_, err := client.Analysis.Create().
			SetAccountID(guest.ID).
			SetSessionToken(token).
			SetRawText("Hémoglobine : 13.5 g/dL").
			SetStatus(string(constants.AnalysisAnalyzed)).
			Save(ctx)
		require.NoError(t, err)
	}
	return guest
}

func TestRegister_WithoutToken(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewReconciler(client, nil)

	acct, migrated, err := r.Register(context.Background(), RegisterRequest{
		Email:    "Jean.Dupont@Example.com",
		Password: "s3cret",
		Age:      42,
		Gender:   "Homme",
	})
	require.NoError(t, err)
	require.Zero(t, migrated)
	require.False(t, acct.IsGuest)
	require.Equal(t, "jean.dupont@example.com", acct.Email)
	require.Equal(t, 42, acct.Age)
	require.Equal(t, "Homme", acct.Gender)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte("s3cret")))
}

func TestRegister_DefaultsGender(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewReconciler(client, nil)

	acct, _, err := r.Register(context.Background(), RegisterRequest{
		Email:    "no-gender@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	require.Equal(t, "Non spécifié", acct.Gender)
}

func TestRegister_RequiresEmailAndPassword(t *testing.T) {
	r := NewReconciler(testutil.OpenEnt(t), nil)

	// missing inputs are the caller's fault, never an internal failure
	_, _, err := r.Register(context.Background(), RegisterRequest{Password: "pw"})
	require.Error(t, err)
	require.Equal(t, common.CauseIdentityRequired, common.CauseOf(err))

	_, _, err = r.Register(context.Background(), RegisterRequest{Email: "a@b.c"})
	require.Error(t, err)
	require.Equal(t, common.CauseIdentityRequired, common.CauseOf(err))
}

func TestRegister_EmailTaken(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewReconciler(client, nil)
	ctx := context.Background()

	_, _, err := r.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "pw"})
	require.NoError(t, err)

	_, _, err = r.Register(ctx, RegisterRequest{Email: "DUP@example.com", Password: "pw2"})
	require.Error(t, err)
	require.Equal(t, common.CauseEmailTaken, common.CauseOf(err))

	// the failed attempt must not leave a second row behind
	n, cErr := client.Account.Query().Where(account.EmailEQ("dup@example.com")).Count(ctx)
	require.NoError(t, cErr)
	require.Equal(t, 1, n)
}

func TestRegister_MigratesGuestWork(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewReconciler(client, nil)
	ctx := context.Background()

	guest := seedGuestWithAnalyses(t, client, "sess-mig", 5)

	acct, migrated, err := r.Register(ctx, RegisterRequest{
		Email:        "owner@example.com",
		Password:     "pw",
		SessionToken: "sess-mig",
	})
	require.NoError(t, err)
	require.Equal(t, 5, migrated)

	// every analysis re-owned, none still carries the token
	owned, qErr := client.Analysis.Query().Where(analysis.AccountID(acct.ID)).Count(ctx)
	require.NoError(t, qErr)
	require.Equal(t, 5, owned)

	tokenBound, qErr := client.Analysis.Query().Where(analysis.SessionTokenNotNil()).Count(ctx)
	require.NoError(t, qErr)
	require.Zero(t, tokenBound)

	// the guest account is gone
	_, gErr := client.Account.Get(ctx, guest.ID)
	require.True(t, ent.IsNotFound(gErr))

	tokenAccounts, qErr := client.Account.Query().Where(account.SessionTokenNotNil()).Count(ctx)
	require.NoError(t, qErr)
	require.Zero(t, tokenAccounts)
}

func TestRegister_UnknownTokenMigratesNothing(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewReconciler(client, nil)

	acct, migrated, err := r.Register(context.Background(), RegisterRequest{
		Email:        "fresh@example.com",
		Password:     "pw",
		SessionToken: "never-seen",
	})
	require.NoError(t, err)
	require.Zero(t, migrated)
	require.NotNil(t, acct)
}

func TestRegister_GuestWithoutAnalyses(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewReconciler(client, nil)
	ctx := context.Background()

	guest := seedGuestWithAnalyses(t, client, "sess-empty", 0)

	_, migrated, err := r.Register(ctx, RegisterRequest{
		Email:        "empty@example.com",
		Password:     "pw",
		SessionToken: "sess-empty",
	})
	require.NoError(t, err)
	require.Zero(t, migrated)

	_, gErr := client.Account.Get(ctx, guest.ID)
	require.True(t, ent.IsNotFound(gErr))
}

func TestRegister_EmailTakenRollsBackMigration(t *testing.T) {
	client := testutil.OpenEnt(t)
	r := NewReconciler(client, nil)
	ctx := context.Background()

	_, _, err := r.Register(ctx, RegisterRequest{Email: "taken@example.com", Password: "pw"})
	require.NoError(t, err)

	guest := seedGuestWithAnalyses(t, client, "sess-rb", 3)

	_, _, err = r.Register(ctx, RegisterRequest{
		Email:        "taken@example.com",
		Password:     "pw",
		SessionToken: "sess-rb",
	})
	require.Equal(t, common.CauseEmailTaken, common.CauseOf(err))

	// guest and its work are untouched
	still, qErr := client.Analysis.Query().
		Where(analysis.AccountID(guest.ID), analysis.SessionTokenNotNil()).
		Count(ctx)
	require.NoError(t, qErr)
	require.Equal(t, 3, still)
	_, gErr := client.Account.Get(ctx, guest.ID)
	require.NoError(t, gErr)
}
