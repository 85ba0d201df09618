package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/earthmove/internal/db"
	"github.com/alexanderramin/earthmove/internal/domain"
)

// SQLiteAuditRepo implements AuditRepo using a SQLite database.
type SQLiteAuditRepo struct {
	db db.DBTX
}

func NewSQLiteAuditRepo(conn db.DBTX) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: conn}
}

// Append inserts e and sets its ID. Only the date part of RecordedOn is kept.
func (r *SQLiteAuditRepo) Append(ctx context.Context, e *domain.AuditEntry) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (recorded_on, action, descriptor) VALUES (?, ?, ?)`,
		e.RecordedOn.Format(dateLayout), string(e.Action), e.Descriptor,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}
	id, err := lastInsertID(res, "audit entry")
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *SQLiteAuditRepo) List(ctx context.Context) ([]domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, recorded_on, action, descriptor FROM audit_log ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var recordedOn, action string
		if err := rows.Scan(&e.ID, &recordedOn, &action, &e.Descriptor); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		e.RecordedOn, err = time.Parse(dateLayout, recordedOn)
		if err != nil {
			return nil, fmt.Errorf("parsing recorded_on: %w", err)
		}
		e.Action = domain.AuditAction(action)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit entries: %w", err)
	}
	return entries, nil
}
