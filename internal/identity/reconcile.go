package identity

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/repository"
)

// RegisterRequest carries registration inputs.
type RegisterRequest struct {
	Email        string
	Password     string
	Age          int
	Gender       string
	SessionToken string // optional; triggers guest migration
}

// Reconciler creates registered accounts and migrates guest-owned
// analyses to them, atomically.
type Reconciler struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReconciler(client *ent.Client, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{client: client, logger: logger}
}

// Register creates the account and, when a session token is supplied,
// re-points every analysis bound to the token and deletes the guest
// account, all in one transaction. Zero migrated analyses is not an
// error. After return no account or analysis row holds the token.
func (r *Reconciler) Register(ctx context.Context, req RegisterRequest) (*ent.Account, int, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, 0, common.NewFault(common.CauseIdentityRequired, "email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, 0, common.WrapFault(common.CauseInternal, "hashing credential", err)
	}
	gender := strings.TrimSpace(req.Gender)
	if gender == "" {
		gender = "Non spécifié"
	}

	var (
		created  *ent.Account
		migrated int
	)
	err = repository.WithTx(ctx, r.client, func(tx *ent.Tx) error {
		taken, err := tx.Account.Query().
			Where(account.EmailEQ(email), account.IsGuest(false)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if taken {
			return common.NewFault(common.CauseEmailTaken, "email already registered")
		}

		created, err = tx.Account.Create().
			SetEmail(email).
			SetPasswordHash(string(hash)).
			SetAge(req.Age).
			SetGender(gender).
			SetIsGuest(false).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return common.NewFault(common.CauseEmailTaken, "email already registered")
			}
			return err
		}

		token := strings.TrimSpace(req.SessionToken)
		if token == "" {
			return nil
		}
		migrated, err = repository.MigrateSession(ctx, tx, token, created.ID)
		if err != nil {
			return err
		}
		// migration re-pointed the guest's rows, so the FK no longer
		// blocks removal; a token without a guest account is fine
		if _, err := repository.DeleteGuestByToken(ctx, tx, token); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if common.CauseOf(err) == common.CauseInternal {
			return nil, 0, common.WrapFault(common.CauseInternal, "registration failed", err)
		}
		return nil, 0, err
	}

	r.logger.Info("account registered", "account_id", created.ID, "migrated", migrated)
	return created, migrated, nil
}
