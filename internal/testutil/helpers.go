package testutil

import (
	"database/sql"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/cache"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/csvload"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/repository"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/service"
)

// NewTestViewCache creates a 1MB view cache without expiry.
func NewTestViewCache(t *testing.T) *cache.ViewCache {
	t.Helper()
	return cache.NewViewCache(1024*1024, time.Duration(0))
}

func NewTestDashboardService(t *testing.T, table *model.RateTable, reference string) *service.DashboardService {
	t.Helper()

	svc, err := service.NewDashboardService(table, reference, NewTestViewCache(t), zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create dashboard service: %v", err)
	}
	return svc
}

func NewTestRateService(t *testing.T, db *sql.DB) *service.RateService {
	t.Helper()

	logger := zap.NewNop()
	return service.NewRateService(
		repository.NewRateRepository(db),
		csvload.NewLoader(logger),
		logger,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB, table *model.RateTable) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db, table, NewTestRateService(t, db), zap.NewNop())
}
