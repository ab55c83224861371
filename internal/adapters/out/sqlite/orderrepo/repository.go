// Package orderrepo stores order aggregates in an embedded SQLite database.
//
// Each order is one row: the indexed columns needed for lookups plus the full
// aggregate as a snapshot document. WAL mode lets readers proceed while a
// write is in flight.
package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pancakelab/internal/adapters/out/snapshot"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/pkg/errs"

	// Register the pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

const storeName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id          TEXT    PRIMARY KEY,
    status      TEXT    NOT NULL,
    created_at  TEXT    NOT NULL,
    updated_at  TEXT    NOT NULL,
    document    BLOB    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at, id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at, id);
`

// timeLayout sorts lexically in time order, so created_at can be compared as TEXT.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// SQLiteOrderRepository implements ports.OrderRepository on top of database/sql.
type SQLiteOrderRepository struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path and applies the schema.
//
//	repo, err := orderrepo.Open("./data/pancakelab.db")
func Open(path string) (*SQLiteOrderRepository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause(storeName, fmt.Errorf("open %q: %w", path, err))
	}

	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errs.NewUnavailableErrorWithCause(storeName, fmt.Errorf("apply schema: %w", err))
	}

	return &SQLiteOrderRepository{db: db}, nil
}

// Close releases the database connection.
func (r *SQLiteOrderRepository) Close() error {
	return r.db.Close()
}

// Save inserts the order or replaces the row with the same id.
func (r *SQLiteOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	document, err := snapshot.Marshal(aggregate)
	if err != nil {
		return err
	}

	const q = `
		INSERT INTO orders (id, status, created_at, updated_at, document)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status     = excluded.status,
			updated_at = excluded.updated_at,
			document   = excluded.document`

	_, err = r.db.ExecContext(ctx, q,
		aggregate.ID().String(),
		aggregate.Status().String(),
		formatTime(aggregate.CreatedAt()),
		formatTime(aggregate.UpdatedAt()),
		document,
	)
	if err != nil {
		return errs.NewUnavailableErrorWithCause(storeName, fmt.Errorf("save order %s: %w", aggregate.ID(), err))
	}
	return nil
}

// Get returns the order with the given id or an errs.ObjectNotFoundError.
func (r *SQLiteOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var document []byte
	err := r.db.QueryRowContext(ctx, `SELECT document FROM orders WHERE id = ?`, id.String()).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause(storeName, fmt.Errorf("get order %s: %w", id, err))
	}

	return snapshot.Unmarshal(document)
}

// FindActive returns every active order, oldest first.
func (r *SQLiteOrderRepository) FindActive(ctx context.Context) ([]*order.Order, error) {
	var active []any
	for _, s := range order.Statuses() {
		if s.IsActive() {
			active = append(active, s.String())
		}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(active)), ",")
	return r.find(ctx, "status IN ("+placeholders+")", active...)
}

// FindByStatus returns every order in status, oldest first.
func (r *SQLiteOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "status = ?", status.String())
}

// Exists reports whether an order with the given id is stored.
func (r *SQLiteOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = ?)`, id.String()).Scan(&exists)
	if err != nil {
		return false, errs.NewUnavailableErrorWithCause(storeName, fmt.Errorf("check order %s: %w", id, err))
	}
	return exists, nil
}

// Delete removes the order with the given id and reports whether it was there.
func (r *SQLiteOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id.String())
	if err != nil {
		return false, errs.NewUnavailableErrorWithCause(storeName, fmt.Errorf("delete order %s: %w", id, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errs.NewUnavailableErrorWithCause(storeName, err)
	}
	return affected > 0, nil
}

func (r *SQLiteOrderRepository) find(ctx context.Context, where string, args ...any) ([]*order.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT document FROM orders WHERE `+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause(storeName, fmt.Errorf("list orders: %w", err))
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var document []byte
		if err = rows.Scan(&document); err != nil {
			return nil, errs.NewUnavailableErrorWithCause(storeName, err)
		}

		o, decodeErr := snapshot.Unmarshal(document)
		if decodeErr != nil {
			return nil, decodeErr
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewUnavailableErrorWithCause(storeName, err)
	}

	return orders, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
