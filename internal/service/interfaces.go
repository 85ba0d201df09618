package service

import (
	"context"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/alexanderramin/earthmove/internal/importer"
)

// MovementService is the movement record store. Every mutation is a single
// transaction that also appends one audit entry.
type MovementService interface {
	// Add stores a new movement. action tags the audit entry and defaults
	// to domain.AuditCreate when empty.
	Add(ctx context.Context, in domain.MovementInput, action domain.AuditAction) (*domain.MovementRecord, error)
	Get(ctx context.Context, descriptor string) (*domain.MovementRecord, error)
	List(ctx context.Context) ([]domain.MovementSummary, error)
	Edit(ctx context.Context, descriptor string, change domain.MovementChange) (*domain.MovementRecord, error)
	Remove(ctx context.Context, descriptor string) error
	AuditLog(ctx context.Context) ([]domain.AuditEntry, error)
}

// ExportResult describes a written report file.
type ExportResult struct {
	Path   string
	Format string
	Lines  int
	Total  float64
}

type ReportService interface {
	TotalCubication(ctx context.Context) (float64, error)
	BuildReport(ctx context.Context) (*domain.Report, error)
	ExportReport(ctx context.Context, path string) (*ExportResult, error)
}

type ImportOptions struct {
	// Strict stops at the first row that cannot be stored. Rows already
	// stored stay committed.
	Strict bool
}

// RowFailure is a well-formed import row the store rejected.
type RowFailure struct {
	Line       int
	Descriptor string
	Err        error
}

// ImportResult holds the outcome of a bulk import.
type ImportResult struct {
	Created []string
	Skipped []importer.Skipped
	Failed  []RowFailure
}

type ImportService interface {
	ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error)
	ImportRecords(ctx context.Context, records [][]string, opts ImportOptions) (*ImportResult, error)
}
