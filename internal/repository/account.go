package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/gen/ent/account"
)

// GuestPasswordHash is the opaque credential placeholder stored for
// guest accounts; guests have no durable credential.
const GuestPasswordHash = "guest-no-password"

// GuestEmail derives the synthetic, non-colliding address bound to a
// session token.
func GuestEmail(sessionToken string) string {
	return fmt.Sprintf("guest_%s@santescan.local", sessionToken)
}

type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Account, error)
	// GetByToken returns the guest account bound to a session token,
	// or ErrNotFound.
	GetByToken(ctx context.Context, sessionToken string) (*ent.Account, error)
	// CreateGuest inserts a guest account bound to the token. A
	// concurrent winner surfaces as ErrConflict via the unique
	// constraint on session_token.
	CreateGuest(ctx context.Context, sessionToken string) (*ent.Account, error)
}

type accountRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAccountRepository(client *ent.Client, logger *slog.Logger) AccountRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &accountRepository{
		client: client,
		logger: logger,
	}
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Account, error) {
	a, err := r.client.Account.Query().
		Where(account.ID(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *accountRepository) GetByToken(ctx context.Context, sessionToken string) (*ent.Account, error) {
	a, err := r.client.Account.Query().
		Where(account.SessionTokenEQ(sessionToken), account.IsGuest(true)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *accountRepository) CreateGuest(ctx context.Context, sessionToken string) (*ent.Account, error) {
	a, err := r.client.Account.Create().
		SetEmail(GuestEmail(sessionToken)).
		SetPasswordHash(GuestPasswordHash).
		SetAge(0).
		SetIsGuest(true).
		SetSessionToken(sessionToken).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConflict
		}
		r.logger.Error("failed to create guest account", "error", err)
		return nil, err
	}
	r.logger.Info("guest account created", "account_id", a.ID)
	return a, nil
}
