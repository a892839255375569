package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/database"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db          *sql.DB
	table       *model.RateTable
	rateService *RateService
	logger      *zap.Logger
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, table *model.RateTable, rateService *RateService, logger *zap.Logger) *SystemService {
	return &SystemService{
		db:          db,
		table:       table,
		rateService: rateService,
		logger:      logger,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth(ctx context.Context) error {
	if err := database.HealthCheck(ctx, s.db); err != nil {
		return err
	}
	if s.table == nil {
		return apperrors.ErrNoRateData
	}
	return nil
}

// CheckVersion reports the application version, the applied schema version and
// whether embedded migrations are still pending.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	current, latest, err := database.SchemaStatus(s.db, s.logger)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersionInfo, err)
	}

	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  strconv.FormatInt(current, 10),
		Features: map[string]bool{
			"dashboard":      s.table != nil,
			"series_export":  true,
			"text_date_axis": s.table != nil && s.table.Axis() == model.DateAxisText,
		},
		MigrationNeeded: current < latest,
	}
	if info.MigrationNeeded {
		msg := fmt.Sprintf("Database schema is at version %d, latest is %d", current, latest)
		info.MigrationMessage = &msg
	}
	return info, nil
}

// Dataset summarizes the loaded rate table and the import it came from.
// Counts are zero when no table is loaded. A failed history lookup is logged
// and leaves LastImport nil.
func (s *SystemService) Dataset(ctx context.Context) model.DatasetInfo {
	var info model.DatasetInfo
	if s.table != nil {
		info.Rows = s.table.Len()
		info.Columns = len(s.table.Columns())
		info.DateAxis = s.table.Axis()
	}

	rec, err := s.rateService.LastImport(ctx)
	if err != nil {
		s.logger.Warn("failed to read import history", zap.Error(err))
		return info
	}
	info.LastImport = rec
	return info
}
