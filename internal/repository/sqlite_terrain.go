package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/earthmove/internal/db"
	"github.com/alexanderramin/earthmove/internal/domain"
)

// SQLiteTerrainRepo implements TerrainRepo using a SQLite database.
type SQLiteTerrainRepo struct {
	db db.DBTX
}

func NewSQLiteTerrainRepo(conn db.DBTX) *SQLiteTerrainRepo {
	return &SQLiteTerrainRepo{db: conn}
}

func (r *SQLiteTerrainRepo) Create(ctx context.Context, t domain.TerrainType) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO terrain_types (code, swell_factor) VALUES (?, ?)`, t.Code(), t.Factor())
	if err != nil {
		return 0, fmt.Errorf("inserting terrain type: %w", err)
	}
	return lastInsertID(res, "terrain type")
}

func (r *SQLiteTerrainRepo) Update(ctx context.Context, id int64, t domain.TerrainType) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE terrain_types SET code = ?, swell_factor = ? WHERE id = ?`, t.Code(), t.Factor(), id)
	if err != nil {
		return fmt.Errorf("updating terrain type: %w", err)
	}
	return expectOneRow(res, "terrain type", id)
}

func (r *SQLiteTerrainRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM terrain_types WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting terrain type: %w", err)
	}
	return nil
}
