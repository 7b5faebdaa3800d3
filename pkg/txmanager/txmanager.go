// Package txmanager runs functions inside serializable transactions on an
// instrumented database handle. Serialization conflicts are retried once:
// the capacity check in the booking flow relies on SERIALIZABLE isolation,
// and a single retry absorbs the occasional conflict between two
// simultaneous requests without surfacing it to the caller.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/adesombergh/yeety-book-test-sub000/pkg/dbmetrics"
)

const maxAttempts = 2

// ErrTransaction wraps failures of the transaction machinery itself.
var ErrTransaction = errors.New("txmanager: transaction error")

// TransactionManager begins serializable transactions on a metrics-wrapped DB.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a manager over an instrumented handle.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction injected into
// the context. On a serialization conflict the whole function is retried
// once; any other error rolls back and is returned as-is.
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
			if IsSerializationError(err) && attempt < maxAttempts {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if IsSerializationError(err) && attempt < maxAttempts {
				lastErr = err
				continue
			}
			return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
		}

		return nil
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTransaction, lastErr)
}

// IsSerializationError reports whether err is a PostgreSQL serialization
// failure or deadlock, i.e. a conflict worth retrying.
func IsSerializationError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	// 40001 serialization_failure, 40P01 deadlock_detected
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}
