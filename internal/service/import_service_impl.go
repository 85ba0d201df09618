package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/alexanderramin/earthmove/internal/importer"
)

type importService struct {
	movements MovementService
	delimiter rune
	observer  UseCaseObserver
}

// NewImportService feeds import rows through the same Add path as
// interactive entry.
func NewImportService(movements MovementService, delimiter rune, observers ...UseCaseObserver) ImportService {
	return &importService{
		movements: movements,
		delimiter: delimiter,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	records, err := importer.ReadFile(path, s.delimiter)
	if err != nil {
		return nil, err
	}
	return s.ImportRecords(ctx, records, opts)
}

// ImportRecords stores every well-formed row. Each row is its own
// transaction, so a failing row never undoes earlier ones.
func (s *importService) ImportRecords(ctx context.Context, records [][]string, opts ImportOptions) (result *ImportResult, err error) {
	fields := map[string]any{"strict": opts.Strict}
	defer observe(ctx, s.observer, "import-movements", time.Now(), fields, &err)

	batch := importer.ParseRecords(records)
	result = &ImportResult{Skipped: batch.Skipped}
	defer func() {
		fields["created"] = len(result.Created)
		fields["skipped"] = len(result.Skipped)
		fields["failed"] = len(result.Failed)
	}()

	for _, row := range batch.Rows {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		rowErr := s.importRow(ctx, row)
		if rowErr == nil {
			result.Created = append(result.Created, row.Descriptor)
			continue
		}

		result.Failed = append(result.Failed, RowFailure{Line: row.Line, Descriptor: row.Descriptor, Err: rowErr})
		if opts.Strict {
			err = fmt.Errorf("import stopped at line %d (%q): %w", row.Line, row.Descriptor, rowErr)
			return result, err
		}
	}
	return result, nil
}

func (s *importService) importRow(ctx context.Context, row importer.Row) error {
	terrain, err := domain.ParseTerrainType(row.TerrainCode)
	if err != nil {
		return err
	}
	in := domain.MovementInput{
		Descriptor: row.Descriptor,
		MovementChange: domain.MovementChange{
			Dimensions:  row.Dimensions,
			Terrain:     terrain,
			Coordinates: row.Coordinates,
		},
	}
	_, err = s.movements.Add(ctx, in, domain.AuditImport)
	return err
}
