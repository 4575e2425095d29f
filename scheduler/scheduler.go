package scheduler

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"brushfuel/config"
	"brushfuel/pkg/export"
	"brushfuel/pkg/fuellog/repository"
	"brushfuel/pkg/fuellog/service"
)

// Scheduler writes periodic history snapshots so the register survives a
// lost or corrupted database file.
type Scheduler struct {
	cron   *cron.Cron
	logs   service.FuelLogService
	cfg    config.AppConfig
	logger *zap.Logger
}

func New(cfg config.AppConfig, logs service.FuelLogService, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("bad TZ, falling back to local time", zap.String("tz", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		logs:   logs,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("starting snapshot scheduler", zap.String("spec", s.cfg.SnapshotCron))
	if _, err := s.cron.AddFunc(s.cfg.SnapshotCron, s.writeSnapshot); err != nil {
		s.logger.Error("failed to schedule snapshot job", zap.Error(err))
		return
	}
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping snapshot scheduler")
	s.cron.Stop()
}

func (s *Scheduler) writeSnapshot() {
	if err := s.WriteSnapshotNow(time.Now()); err != nil {
		s.logger.Error("snapshot failed", zap.Error(err))
	}
}

// WriteSnapshotNow exports the full history into the snapshot dir. It does
// nothing when there are no records yet.
func (s *Scheduler) WriteSnapshotNow(now time.Time) error {
	recs, err := s.logs.List(repository.Filter{})
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		s.logger.Info("no records, skipping snapshot")
		return nil
	}

	f, err := export.History(recs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.cfg.SnapshotDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(s.cfg.SnapshotDir, "historico_"+now.Format("20060102_150405")+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return err
	}
	s.logger.Info("snapshot written", zap.String("path", path), zap.Int("records", len(recs)))
	return nil
}
