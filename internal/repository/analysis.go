package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
)

// CreateAnalysisParams wraps parameters for persisting one ingestion result.
type CreateAnalysisParams struct {
	AccountID    uuid.UUID
	SessionToken *string // non-nil only when the owning account is a guest
	RawText      string
	AiSummary    string
	Status       constants.AnalysisStatus
	UploadedAt   time.Time
}

type AnalysisRepository interface {
	// Create persists one analysis row. The write is a single INSERT,
	// so readers never observe a partially-initialized record.
	Create(ctx context.Context, p CreateAnalysisParams) (*ent.Analysis, error)
	// GetWithDetails loads one analysis with its detail lines, or ErrNotFound.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*ent.Analysis, error)
	// ListBySession returns analyses bound to a session token with
	// their detail lines, newest first.
	ListBySession(ctx context.Context, sessionToken string) ([]*ent.Analysis, error)
	// ListByAccount returns an account's analyses with their detail
	// lines, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ent.Analysis, error)
}

type analysisRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAnalysisRepository(client *ent.Client, logger *slog.Logger) AnalysisRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &analysisRepository{
		client: client,
		logger: logger,
	}
}

func (r *analysisRepository) Create(ctx context.Context, p CreateAnalysisParams) (*ent.Analysis, error) {
	builder := r.client.Analysis.Create().
		SetAccountID(p.AccountID).
		SetRawText(p.RawText).
		SetAiSummary(p.AiSummary).
		SetStatus(string(p.Status)).
		SetUploadedAt(p.UploadedAt).
		SetNillableSessionToken(p.SessionToken)

	a, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create analysis", "account_id", p.AccountID, "error", err)
		return nil, err
	}
	return a, nil
}

func (r *analysisRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*ent.Analysis, error) {
	a, err := r.client.Analysis.Query().
		Where(analysis.ID(id)).
		WithDetails().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get analysis", "analysis_id", id, "error", err)
		return nil, err
	}
	return a, nil
}

func (r *analysisRepository) ListBySession(ctx context.Context, sessionToken string) ([]*ent.Analysis, error) {
	list, err := r.client.Analysis.Query().
		Where(analysis.SessionTokenEQ(sessionToken)).
		WithDetails().
		Order(analysis.ByUploadedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list session analyses", "error", err)
		return nil, err
	}
	return list, nil
}

func (r *analysisRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ent.Analysis, error) {
	list, err := r.client.Analysis.Query().
		Where(analysis.AccountID(accountID)).
		WithDetails().
		Order(analysis.ByUploadedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list account analyses", "account_id", accountID, "error", err)
		return nil, err
	}
	return list, nil
}

// MigrateSession re-points every analysis bound to sessionToken at the
// new owner and clears the token. Returns the number of migrated rows.
// Runs inside the caller's transaction.
func MigrateSession(ctx context.Context, tx *ent.Tx, sessionToken string, newOwner uuid.UUID) (int, error) {
	return tx.Analysis.Update().
		Where(analysis.SessionTokenEQ(sessionToken)).
		SetAccountID(newOwner).
		ClearSessionToken().
		Save(ctx)
}

// DeleteGuestByToken removes the guest account bound to sessionToken,
// if one exists. Runs inside the caller's transaction.
func DeleteGuestByToken(ctx context.Context, tx *ent.Tx, sessionToken string) (int, error) {
	return tx.Account.Delete().
		Where(account.SessionTokenEQ(sessionToken), account.IsGuest(true)).
		Exec(ctx)
}
