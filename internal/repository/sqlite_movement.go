package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/earthmove/internal/db"
	"github.com/alexanderramin/earthmove/internal/domain"
)

// SQLiteMovementRepo implements MovementRepo using a SQLite database.
type SQLiteMovementRepo struct {
	db db.DBTX
}

func NewSQLiteMovementRepo(conn db.DBTX) *SQLiteMovementRepo {
	return &SQLiteMovementRepo{db: conn}
}

const movementJoin = `FROM movements m
		JOIN volumes v ON m.volume_id = v.id
		JOIN terrain_types t ON m.terrain_id = t.id
		JOIN coordinates c ON m.coordinates_id = c.id`

func (r *SQLiteMovementRepo) Create(ctx context.Context, m *domain.MovementRecord, refs MovementRefs) error {
	query := `INSERT INTO movements (id, descriptor, volume_id, terrain_id, coordinates_id, audit_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Descriptor,
		refs.VolumeID,
		refs.TerrainID,
		refs.CoordinatesID,
		nullableID(refs.AuditID),
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err, "movements.descriptor") {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateDescriptor, m.Descriptor)
		}
		return fmt.Errorf("inserting movement: %w", err)
	}
	return nil
}

func (r *SQLiteMovementRepo) GetByDescriptor(ctx context.Context, descriptor string) (*StoredMovement, error) {
	query := `SELECT m.id, m.descriptor, m.created_at, m.updated_at,
			v.id, v.width, v.length, v.height, v.total,
			t.id, t.code, t.swell_factor,
			c.id, c.east, c.north,
			COALESCE(m.audit_id, 0)
		` + movementJoin + `
		WHERE m.descriptor = ?`

	var sm StoredMovement
	var code int
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, query, descriptor).Scan(
		&sm.ID, &sm.Descriptor, &createdAt, &updatedAt,
		&sm.Refs.VolumeID, &sm.Volume.Width, &sm.Volume.Length, &sm.Volume.Height, &sm.Volume.Total,
		&sm.Refs.TerrainID, &code, &sm.SwellFactor,
		&sm.Refs.CoordinatesID, &sm.Coordinates.East, &sm.Coordinates.North,
		&sm.Refs.AuditID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, descriptor)
		}
		return nil, fmt.Errorf("scanning movement: %w", err)
	}

	sm.Terrain = domain.TerrainType(code)
	if sm.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if sm.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &sm, nil
}

func (r *SQLiteMovementRepo) ExistsByDescriptor(ctx context.Context, descriptor string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movements WHERE descriptor = ?`, descriptor).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking descriptor: %w", err)
	}
	return n > 0, nil
}

// List returns every movement in insertion order.
func (r *SQLiteMovementRepo) List(ctx context.Context) ([]domain.MovementSummary, error) {
	query := `SELECT m.descriptor, v.total, t.code, c.east, c.north
		` + movementJoin + `
		ORDER BY m.seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	defer rows.Close()

	var out []domain.MovementSummary
	for rows.Next() {
		var s domain.MovementSummary
		var code int
		if err := rows.Scan(&s.Descriptor, &s.RawVolume, &code, &s.Coordinates.East, &s.Coordinates.North); err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}
		s.Terrain = domain.TerrainType(code)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movements: %w", err)
	}
	return out, nil
}

func (r *SQLiteMovementRepo) Touch(ctx context.Context, id string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE movements SET updated_at = ? WHERE id = ?`,
		updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating movement: %w", err)
	}
	return expectOneRow(res, "movement", id)
}

func (r *SQLiteMovementRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting movement: %w", err)
	}
	return expectOneRow(res, "movement", id)
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
