package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/coocood/freecache"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/cache"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/report"
)

// DashboardService answers currency selections against the loaded rate table.
// The table never changes after startup, so the service holds no locks; the
// view cache synchronizes itself.
type DashboardService struct {
	table     *model.RateTable
	reference string
	cache     *cache.ViewCache
	logger    *zap.Logger
}

// NewDashboardService creates a DashboardService over table.
//
// The reference column must exist in table. viewCache may be nil, in which case
// every selection is computed from scratch.
func NewDashboardService(
	table *model.RateTable,
	reference string,
	viewCache *cache.ViewCache,
	logger *zap.Logger,
) (*DashboardService, error) {
	if table == nil {
		return nil, apperrors.ErrNoRateData
	}
	if !table.HasColumn(reference) {
		return nil, fmt.Errorf("%w: reference currency %s", apperrors.ErrInvalidColumn, reference)
	}
	return &DashboardService{
		table:     table,
		reference: reference,
		cache:     viewCache,
		logger:    logger,
	}, nil
}

// Reference returns the configured reference currency.
func (s *DashboardService) Reference() string {
	return s.reference
}

// Currencies returns every column of the rate table in file order, with the first
// column as the default selection.
func (s *DashboardService) Currencies() model.CurrencyListing {
	columns := s.table.Columns()
	return model.CurrencyListing{
		Currencies:        columns,
		DefaultCurrency:   columns[0],
		ReferenceCurrency: s.reference,
	}
}

// OnSelectionChanged builds the dashboard for a newly selected currency against the
// configured reference currency.
//
// Returns apperrors.ErrInvalidColumn (wrapped) when selected is not a column.
func (s *DashboardService) OnSelectionChanged(selected string) (model.DashboardView, error) {
	return s.View(s.reference, selected)
}

// View builds the dashboard for selected against an explicit reference currency.
// An empty reference means the configured one.
func (s *DashboardService) View(reference, selected string) (model.DashboardView, error) {
	reference = s.resolveReference(reference)

	entry, err := s.compute(reference, selected)
	if err != nil {
		return model.DashboardView{}, err
	}

	return model.DashboardView{
		Currency:    selected,
		Reference:   reference,
		Chart:       BuildChart(entry.Series, selected, reference),
		Extrema:     entry.Extrema,
		ExtremaText: entry.Extrema.Lines(),
	}, nil
}

// Series returns the normalized series for selected against reference.
// An empty reference means the configured one.
func (s *DashboardService) Series(reference, selected string) (model.NormalizedSeries, error) {
	entry, err := s.compute(s.resolveReference(reference), selected)
	if err != nil {
		return model.NormalizedSeries{}, err
	}
	return entry.Series, nil
}

// ExportSeries writes the normalized series for selected against reference to w
// in the given format. Rows are the date and the ratio.
func (s *DashboardService) ExportSeries(w io.Writer, reference, selected string, format report.Format) error {
	reference = s.resolveReference(reference)

	series, err := s.Series(reference, selected)
	if err != nil {
		return err
	}

	table := report.Table{
		Title:   fmt.Sprintf("Exchange Rate between 1 %s and %s", reference, selected),
		Headers: []string{"Date", fmt.Sprintf("%s in %s", selected, reference)},
		Rows: lo.Map(series.Points, func(p model.SeriesPoint, _ int) []string {
			return []string{p.Label, strconv.FormatFloat(p.Value, 'f', -1, 64)}
		}),
	}

	if err := report.Write(w, format, table); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToExportSeries, err)
	}
	return nil
}

func (s *DashboardService) resolveReference(reference string) string {
	if reference == "" {
		return s.reference
	}
	return reference
}

// compute returns the series and extrema for the pair, from the cache when present.
func (s *DashboardService) compute(reference, selected string) (cache.Entry, error) {
	if s.cache != nil {
		entry, err := s.cache.Get(reference, selected)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("view cache read failed", zap.String("reference", reference),
				zap.String("selected", selected), zap.Error(err))
		}
	}

	series, err := Transform(s.table, reference, selected)
	if err != nil {
		return cache.Entry{}, err
	}
	entry := cache.Entry{Series: series, Extrema: FindExtrema(series)}

	if s.cache != nil {
		if err := s.cache.Set(reference, selected, entry); err != nil {
			level := zap.WarnLevel
			if errors.Is(err, freecache.ErrLargeEntry) {
				level = zap.DebugLevel
			}
			s.logger.Log(level, "view not cached", zap.String("reference", reference),
				zap.String("selected", selected), zap.Int("points", series.Len()), zap.Error(err))
		}
	}

	return entry, nil
}
