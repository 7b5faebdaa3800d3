// Package simpletxmanager is the txmanager variant for a plain *sql.DB,
// used when metrics are disabled. Semantics match txmanager.DoSerializable.
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adesombergh/yeety-book-test-sub000/pkg/dbmetrics"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/txmanager"
)

const maxAttempts = 2

// ErrTransaction wraps failures of the transaction machinery itself.
var ErrTransaction = errors.New("simpletxmanager: transaction error")

// TransactionManager begins serializable transactions on a raw *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a manager over a raw database handle.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction injected into
// the context, retrying once on a serialization conflict.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
		}

		err = fn(dbmetrics.InjectTx(ctx, tx))
		if err != nil {
			_ = tx.Rollback()
			if txmanager.IsSerializationError(err) && attempt < maxAttempts {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if txmanager.IsSerializationError(err) && attempt < maxAttempts {
				lastErr = err
				continue
			}
			return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
		}

		return nil
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTransaction, lastErr)
}
