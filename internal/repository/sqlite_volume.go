package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/earthmove/internal/db"
	"github.com/alexanderramin/earthmove/internal/domain"
)

// SQLiteVolumeRepo implements VolumeRepo using a SQLite database.
type SQLiteVolumeRepo struct {
	db db.DBTX
}

func NewSQLiteVolumeRepo(conn db.DBTX) *SQLiteVolumeRepo {
	return &SQLiteVolumeRepo{db: conn}
}

func (r *SQLiteVolumeRepo) Create(ctx context.Context, v domain.Volume) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO volumes (width, length, height, total) VALUES (?, ?, ?, ?)`,
		v.Width, v.Length, v.Height, v.Total,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting volume: %w", err)
	}
	return lastInsertID(res, "volume")
}

func (r *SQLiteVolumeRepo) Update(ctx context.Context, id int64, v domain.Volume) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE volumes SET width = ?, length = ?, height = ?, total = ? WHERE id = ?`,
		v.Width, v.Length, v.Height, v.Total, id,
	)
	if err != nil {
		return fmt.Errorf("updating volume: %w", err)
	}
	return expectOneRow(res, "volume", id)
}

func (r *SQLiteVolumeRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM volumes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting volume: %w", err)
	}
	return nil
}
