package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/alexanderramin/earthmove/internal/report"
	"github.com/alexanderramin/earthmove/internal/repository"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

type reportService struct {
	movements repository.MovementRepo
	delimiter rune
	observer  UseCaseObserver
}

func NewReportService(movements repository.MovementRepo, delimiter rune, observers ...UseCaseObserver) ReportService {
	return &reportService{
		movements: movements,
		delimiter: delimiter,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) TotalCubication(ctx context.Context) (total float64, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "total-cubication", time.Now(), fields, &err)

	list, err := s.movements.List(ctx)
	if err != nil {
		return 0, storageError("listing movements", err)
	}
	fields["movements"] = len(list)
	return domain.TotalCubication(list), nil
}

func (s *reportService) BuildReport(ctx context.Context) (*domain.Report, error) {
	list, err := s.movements.List(ctx)
	if err != nil {
		return nil, storageError("listing movements", err)
	}
	return domain.BuildReport(list)
}

// ExportReport writes the report to path. Nothing is written when there are
// no movements.
func (s *reportService) ExportReport(ctx context.Context, path string) (result *ExportResult, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "export-report", time.Now(), fields, &err)

	rep, err := s.BuildReport(ctx)
	if err != nil {
		return nil, err
	}

	result = &ExportResult{Path: path, Format: FormatCSV, Lines: len(rep.Lines), Total: rep.Total}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		result.Format = FormatXLSX
	}
	fields["format"] = result.Format
	fields["lines"] = result.Lines

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating report directory: %w", err)
		}
	}

	if result.Format == FormatXLSX {
		if err = report.WriteXLSX(path, rep); err != nil {
			return nil, err
		}
		return result, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating report file: %w", err)
	}
	if err = report.WriteCSV(f, rep, s.delimiter); err != nil {
		f.Close()
		return nil, err
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("closing report file: %w", err)
	}
	return result, nil
}
