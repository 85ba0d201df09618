package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/earthmove/internal/db"
	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/alexanderramin/earthmove/internal/repository"
	"github.com/google/uuid"
)

type movementService struct {
	movements repository.MovementRepo
	audit     repository.AuditRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

func NewMovementService(
	movements repository.MovementRepo,
	audit repository.AuditRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) MovementService {
	return &movementService{
		movements: movements,
		audit:     audit,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// txRepos are the repositories bound to one transaction.
type txRepos struct {
	movements   *repository.SQLiteMovementRepo
	volumes     *repository.SQLiteVolumeRepo
	terrains    *repository.SQLiteTerrainRepo
	coordinates *repository.SQLiteCoordinatesRepo
	audit       *repository.SQLiteAuditRepo
}

func reposFor(tx db.DBTX) txRepos {
	return txRepos{
		movements:   repository.NewSQLiteMovementRepo(tx),
		volumes:     repository.NewSQLiteVolumeRepo(tx),
		terrains:    repository.NewSQLiteTerrainRepo(tx),
		coordinates: repository.NewSQLiteCoordinatesRepo(tx),
		audit:       repository.NewSQLiteAuditRepo(tx),
	}
}

func (s *movementService) Add(ctx context.Context, in domain.MovementInput, action domain.AuditAction) (record *domain.MovementRecord, err error) {
	fields := map[string]any{"descriptor": in.Descriptor}
	defer observe(ctx, s.observer, "add-movement", time.Now(), fields, &err)

	descriptor, err := domain.NormalizeDescriptor(in.Descriptor)
	if err != nil {
		return nil, err
	}
	if err = in.Validate(); err != nil {
		return nil, err
	}
	vol, err := domain.NewVolume(in.Dimensions)
	if err != nil {
		return nil, err
	}
	if action == "" {
		action = domain.AuditCreate
	}
	fields["action"] = string(action)

	now := s.now()
	record = &domain.MovementRecord{
		ID:          uuid.New().String(),
		Descriptor:  descriptor,
		Volume:      vol,
		Terrain:     in.Terrain,
		SwellFactor: in.Terrain.Factor(),
		Coordinates: in.Coordinates,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := reposFor(tx)

		exists, err := r.movements.ExistsByDescriptor(ctx, descriptor)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateDescriptor, descriptor)
		}

		var refs repository.MovementRefs
		if refs.CoordinatesID, err = r.coordinates.Create(ctx, record.Coordinates); err != nil {
			return err
		}
		if refs.VolumeID, err = r.volumes.Create(ctx, record.Volume); err != nil {
			return err
		}
		if refs.TerrainID, err = r.terrains.Create(ctx, record.Terrain); err != nil {
			return err
		}
		entry := &domain.AuditEntry{RecordedOn: now, Action: action, Descriptor: descriptor}
		if err := r.audit.Append(ctx, entry); err != nil {
			return err
		}
		refs.AuditID = entry.ID

		return r.movements.Create(ctx, record, refs)
	})
	if err != nil {
		return nil, storageError("adding movement", err)
	}
	return record, nil
}

func (s *movementService) Get(ctx context.Context, descriptor string) (*domain.MovementRecord, error) {
	descriptor, err := domain.NormalizeDescriptor(descriptor)
	if err != nil {
		return nil, err
	}
	stored, err := s.movements.GetByDescriptor(ctx, descriptor)
	if err != nil {
		return nil, storageError("getting movement", err)
	}
	return &stored.MovementRecord, nil
}

func (s *movementService) List(ctx context.Context) ([]domain.MovementSummary, error) {
	list, err := s.movements.List(ctx)
	if err != nil {
		return nil, storageError("listing movements", err)
	}
	return list, nil
}

// Edit replaces dimensions, terrain and coordinates of an existing movement
// in place. ID and descriptor are kept.
func (s *movementService) Edit(ctx context.Context, descriptor string, change domain.MovementChange) (record *domain.MovementRecord, err error) {
	fields := map[string]any{"descriptor": descriptor}
	defer observe(ctx, s.observer, "edit-movement", time.Now(), fields, &err)

	if descriptor, err = domain.NormalizeDescriptor(descriptor); err != nil {
		return nil, err
	}
	if err = change.Validate(); err != nil {
		return nil, err
	}
	vol, err := domain.NewVolume(change.Dimensions)
	if err != nil {
		return nil, err
	}

	now := s.now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := reposFor(tx)

		stored, err := r.movements.GetByDescriptor(ctx, descriptor)
		if err != nil {
			return err
		}
		if err := r.volumes.Update(ctx, stored.Refs.VolumeID, vol); err != nil {
			return err
		}
		if err := r.terrains.Update(ctx, stored.Refs.TerrainID, change.Terrain); err != nil {
			return err
		}
		if err := r.coordinates.Update(ctx, stored.Refs.CoordinatesID, change.Coordinates); err != nil {
			return err
		}
		if err := r.movements.Touch(ctx, stored.ID, now); err != nil {
			return err
		}
		if err := r.audit.Append(ctx, &domain.AuditEntry{RecordedOn: now, Action: domain.AuditEdit, Descriptor: stored.Descriptor}); err != nil {
			return err
		}

		record = &stored.MovementRecord
		record.Volume = vol
		record.Terrain = change.Terrain
		record.SwellFactor = change.Terrain.Factor()
		record.Coordinates = change.Coordinates
		record.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, storageError("editing movement", err)
	}
	return record, nil
}

// Remove deletes a movement together with the rows it owns.
func (s *movementService) Remove(ctx context.Context, descriptor string) (err error) {
	defer observe(ctx, s.observer, "remove-movement", time.Now(), map[string]any{"descriptor": descriptor}, &err)

	if descriptor, err = domain.NormalizeDescriptor(descriptor); err != nil {
		return err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := reposFor(tx)

		stored, err := r.movements.GetByDescriptor(ctx, descriptor)
		if err != nil {
			return err
		}
		if err := r.movements.Delete(ctx, stored.ID); err != nil {
			return err
		}
		if err := r.volumes.Delete(ctx, stored.Refs.VolumeID); err != nil {
			return err
		}
		if err := r.terrains.Delete(ctx, stored.Refs.TerrainID); err != nil {
			return err
		}
		if err := r.coordinates.Delete(ctx, stored.Refs.CoordinatesID); err != nil {
			return err
		}
		return r.audit.Append(ctx, &domain.AuditEntry{RecordedOn: s.now(), Action: domain.AuditDelete, Descriptor: stored.Descriptor})
	})
	return storageError("removing movement", err)
}

func (s *movementService) AuditLog(ctx context.Context) ([]domain.AuditEntry, error) {
	entries, err := s.audit.List(ctx)
	if err != nil {
		return nil, storageError("listing audit log", err)
	}
	return entries, nil
}
