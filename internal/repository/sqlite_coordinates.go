package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/earthmove/internal/db"
	"github.com/alexanderramin/earthmove/internal/domain"
)

// SQLiteCoordinatesRepo implements CoordinatesRepo using a SQLite database.
type SQLiteCoordinatesRepo struct {
	db db.DBTX
}

func NewSQLiteCoordinatesRepo(conn db.DBTX) *SQLiteCoordinatesRepo {
	return &SQLiteCoordinatesRepo{db: conn}
}

func (r *SQLiteCoordinatesRepo) Create(ctx context.Context, c domain.Coordinates) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO coordinates (east, north) VALUES (?, ?)`, c.East, c.North)
	if err != nil {
		return 0, fmt.Errorf("inserting coordinates: %w", err)
	}
	return lastInsertID(res, "coordinates")
}

func (r *SQLiteCoordinatesRepo) Update(ctx context.Context, id int64, c domain.Coordinates) error {
	res, err := r.db.ExecContext(ctx, `UPDATE coordinates SET east = ?, north = ? WHERE id = ?`, c.East, c.North, id)
	if err != nil {
		return fmt.Errorf("updating coordinates: %w", err)
	}
	return expectOneRow(res, "coordinates", id)
}

func (r *SQLiteCoordinatesRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM coordinates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting coordinates: %w", err)
	}
	return nil
}
