// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/cache"
)

// StatsSource is the part of the view cache the stats job needs.
type StatsSource interface {
	Stats() cache.Stats
	ResetStats()
}

// cronLogger adapts a zap logger to cron.Logger.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}

// Scheduler manages the cron jobs of the server.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New creates a Scheduler. Jobs that panic are recovered and logged.
func New(logger *zap.Logger) *Scheduler {
	cl := cronLogger{sugar: logger.Sugar()}
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
		logger: logger,
	}
}

// RegisterCacheStats logs the view cache hit counters on the cron schedule and then resets them,
// so every log line covers one interval.
func (s *Scheduler) RegisterCacheStats(spec string, src StatsSource) error {
	if _, err := s.cron.AddFunc(spec, func() { s.reportCacheStats(src) }); err != nil {
		return fmt.Errorf("register cache stats job: %w", err)
	}
	return nil
}

func (s *Scheduler) reportCacheStats(src StatsSource) {
	stats := src.Stats()
	s.logger.Info("view cache stats",
		zap.Int64("entries", stats.Entries),
		zap.Int64("hits", stats.Hits),
		zap.Int64("misses", stats.Misses),
		zap.Float64("hitRate", stats.HitRate),
	)
	src.ResetStats()
}

// Len returns the number of registered jobs.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Start starts the cron scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", s.Len()))
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}
