package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/config"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// TxFunc is the body of a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

// Transactor runs mutating statements inside transactions on the write pool.
type Transactor struct {
	db    *sqlx.DB
	mu    sync.RWMutex
	level sql.IsolationLevel
}

func NewTransactor(conn *Connection, config *config.Config) *Transactor {
	level, err := ParseIsolationLevel(config.DB.Postgres.IsolationLevel)
	if err != nil {
		log.Warn().Err(err).Msg("Unknown isolation level configured, using driver default")
	}

	return &Transactor{
		db:    conn.Write,
		level: level,
	}
}

// IsolationLevel returns the level used by new transactions.
func (t *Transactor) IsolationLevel() sql.IsolationLevel {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.level
}

// SetIsolationLevel changes the level for transactions started afterwards.
func (t *Transactor) SetIsolationLevel(level sql.IsolationLevel) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.level = level
}

// WithTransaction begins a transaction, runs fn and commits. Any error or panic
// in fn rolls the transaction back before returning.
func (t *Transactor) WithTransaction(ctx context.Context, fn TxFunc) (err error) {
	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: t.IsolationLevel()})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false

	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	committed = true

	return nil
}

// ParseIsolationLevel maps a configured name such as "serializable" or
// "read committed" to the database/sql level. Empty means the driver default.
func ParseIsolationLevel(name string) (sql.IsolationLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(name)))

	switch normalized {
	case "", "default":
		return sql.LevelDefault, nil
	case "read uncommitted":
		return sql.LevelReadUncommitted, nil
	case "read committed":
		return sql.LevelReadCommitted, nil
	case "repeatable read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("unsupported isolation level %q", name)
	}
}
