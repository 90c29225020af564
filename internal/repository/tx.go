package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/santescan/santescan/gen/ent"
)

// Sentinel errors returned by repositories so callers never depend on
// driver or ent error types.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// WithTx runs fn inside a transaction scoped to exactly the operations
// fn performs. The transaction is rolled back on error or panic.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
