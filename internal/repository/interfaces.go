package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/earthmove/internal/domain"
)

// MovementRefs are the row IDs of the parts a movement owns.
type MovementRefs struct {
	VolumeID      int64
	TerrainID     int64
	CoordinatesID int64
	AuditID       int64
}

// StoredMovement is a movement joined with its owned rows, plus the row IDs
// needed to update or delete them.
type StoredMovement struct {
	domain.MovementRecord
	Refs MovementRefs
}

type CoordinatesRepo interface {
	Create(ctx context.Context, c domain.Coordinates) (int64, error)
	Update(ctx context.Context, id int64, c domain.Coordinates) error
	Delete(ctx context.Context, id int64) error
}

type VolumeRepo interface {
	Create(ctx context.Context, v domain.Volume) (int64, error)
	Update(ctx context.Context, id int64, v domain.Volume) error
	Delete(ctx context.Context, id int64) error
}

// TerrainRepo stores a terrain code together with the factor resolved at
// write time.
type TerrainRepo interface {
	Create(ctx context.Context, t domain.TerrainType) (int64, error)
	Update(ctx context.Context, id int64, t domain.TerrainType) error
	Delete(ctx context.Context, id int64) error
}

type AuditRepo interface {
	Append(ctx context.Context, e *domain.AuditEntry) error
	List(ctx context.Context) ([]domain.AuditEntry, error)
}

type MovementRepo interface {
	Create(ctx context.Context, m *domain.MovementRecord, refs MovementRefs) error
	GetByDescriptor(ctx context.Context, descriptor string) (*StoredMovement, error)
	ExistsByDescriptor(ctx context.Context, descriptor string) (bool, error)
	List(ctx context.Context) ([]domain.MovementSummary, error)
	Touch(ctx context.Context, id string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
