// Package identity maps request credentials to account ids and
// reconciles guest work into permanent accounts.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/repository"
)

// Identity is the single stable handle a request resolves to.
type Identity struct {
	AccountID    uuid.UUID
	SessionToken string // non-empty only for guests
	Guest        bool
}

// Resolver maps (authenticated principal, session token) to one account id.
type Resolver struct {
	accounts repository.AccountRepository
	logger   *slog.Logger
}

func NewResolver(accounts repository.AccountRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{accounts: accounts, logger: logger}
}

// Resolve returns the identity for a request. An authenticated
// principal is authoritative; a session token supplied alongside it is
// ignored and never persisted. With only a token, the bound guest
// account is looked up or created. With neither, the request fails.
func (r *Resolver) Resolve(ctx context.Context, principalID *uuid.UUID, sessionToken string) (Identity, error) {
	if principalID != nil && *principalID != uuid.Nil {
		return Identity{AccountID: *principalID}, nil
	}

	sessionToken, err := normalizeToken(sessionToken)
	if err != nil {
		return Identity{}, err
	}

	acct, err := r.accounts.GetByToken(ctx, sessionToken)
	if err == nil {
		return Identity{AccountID: acct.ID, SessionToken: sessionToken, Guest: true}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return Identity{}, common.WrapFault(common.CauseInternal, "guest lookup failed", err)
	}

	acct, err = r.accounts.CreateGuest(ctx, sessionToken)
	if errors.Is(err, repository.ErrConflict) {
		// a concurrent request won the insert; use the winner
		r.logger.Info("guest creation lost race, re-fetching winner")
		acct, err = r.accounts.GetByToken(ctx, sessionToken)
	}
	if err != nil {
		return Identity{}, common.WrapFault(common.CauseInternal, "guest account creation failed", err)
	}
	return Identity{AccountID: acct.ID, SessionToken: sessionToken, Guest: true}, nil
}

// ResolveForRead maps credentials to an identity without touching
// storage. Reads never create a guest account; an unknown token simply
// owns nothing.
func (r *Resolver) ResolveForRead(principalID *uuid.UUID, sessionToken string) (Identity, error) {
	if principalID != nil && *principalID != uuid.Nil {
		return Identity{AccountID: *principalID}, nil
	}
	sessionToken, err := normalizeToken(sessionToken)
	if err != nil {
		return Identity{}, err
	}
	return Identity{SessionToken: sessionToken, Guest: true}, nil
}

// normalizeToken trims a session token and rejects empty or over-long
// values before they reach the session_token column.
func normalizeToken(sessionToken string) (string, error) {
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" {
		return "", common.NewFault(common.CauseIdentityRequired, "authentication or session token required")
	}
	if len(sessionToken) > constants.MaxSessionTokenLen {
		return "", common.NewFault(common.CauseIdentityRequired,
			fmt.Sprintf("session token exceeds %d characters", constants.MaxSessionTokenLen))
	}
	return sessionToken, nil
}
