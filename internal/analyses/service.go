// Package analyses is the read side: single-record access under the
// ownership rule, and listings.
package analyses

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/identity"
	"github.com/santescan/santescan/internal/repository"
)

type Service struct {
	analyses repository.AnalysisRepository
	logger   *slog.Logger
}

func NewService(analyses repository.AnalysisRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{analyses: analyses, logger: logger}
}

// Get returns one analysis with its detail lines. A registered caller
// may read only analyses it owns; a guest caller only those bound to
// its own token. A mismatch is access-denied, not not-found: existence
// is not masked.
func (s *Service) Get(ctx context.Context, analysisID uuid.UUID, id identity.Identity) (*ent.Analysis, error) {
	a, err := s.analyses.GetWithDetails(ctx, analysisID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, common.NewFault(common.CauseNotFound, "analyse introuvable")
	}
	if err != nil {
		return nil, common.WrapFault(common.CauseInternal, "loading analysis", err)
	}

	if id.Guest {
		if a.SessionToken == nil || *a.SessionToken != id.SessionToken {
			s.logger.Warn("guest token mismatch on analysis read", "analysis_id", analysisID)
			return nil, common.NewFault(common.CauseAccessDenied, "accès refusé")
		}
		return a, nil
	}
	if a.AccountID != id.AccountID {
		s.logger.Warn("ownership mismatch on analysis read",
			"analysis_id", analysisID, "account_id", id.AccountID)
		return nil, common.NewFault(common.CauseAccessDenied, "accès refusé")
	}
	return a, nil
}

// ListBySession returns every analysis currently bound to the token,
// newest first.
func (s *Service) ListBySession(ctx context.Context, sessionToken string) ([]*ent.Analysis, error) {
	if sessionToken == "" {
		return nil, common.NewFault(common.CauseIdentityRequired, "session token required")
	}
	list, err := s.analyses.ListBySession(ctx, sessionToken)
	if err != nil {
		return nil, common.WrapFault(common.CauseInternal, "listing session analyses", err)
	}
	return list, nil
}

// ListByAccount returns an account's analyses, newest first.
func (s *Service) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ent.Analysis, error) {
	list, err := s.analyses.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, common.WrapFault(common.CauseInternal, "listing account analyses", err)
	}
	return list, nil
}
