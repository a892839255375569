package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/csvload"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/repository"
)

// RateService imports rate files into the database and loads the rate table
// the dashboard is served from.
type RateService struct {
	rateRepo *repository.RateRepository
	loader   *csvload.Loader
	logger   *zap.Logger
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo *repository.RateRepository, loader *csvload.Loader, logger *zap.Logger) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		loader:   loader,
		logger:   logger,
	}
}

// ImportFile parses the rate file at path and replaces the stored rate table with it.
func (s *RateService) ImportFile(ctx context.Context, path string) error {
	table, err := s.loader.LoadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToImportRates, err)
	}

	if err := s.rateRepo.ReplaceTable(ctx, table, path); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToImportRates, err)
	}

	s.logger.Info("imported rate file",
		zap.String("path", path),
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Columns())),
		zap.String("dateAxis", string(table.Axis())),
	)
	return nil
}

// LoadRateTable returns the rate table to serve.
//
// When csvPath is set the file is imported first; otherwise the table from the last
// import is used. Returns apperrors.ErrNoRateData when nothing was ever imported.
func (s *RateService) LoadRateTable(ctx context.Context, csvPath string) (*model.RateTable, error) {
	if csvPath != "" {
		if err := s.ImportFile(ctx, csvPath); err != nil {
			return nil, err
		}
	}

	table, err := s.rateRepo.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToLoadRates, err)
	}
	if table == nil {
		return nil, apperrors.ErrNoRateData
	}
	return table, nil
}

// LastImport returns the most recent import, or nil when nothing was imported.
func (s *RateService) LastImport(ctx context.Context) (*model.ImportRecord, error) {
	rec, err := s.rateRepo.LastImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToLoadRates, err)
	}
	return rec, nil
}
