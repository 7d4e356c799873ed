package jobs

import (
	"context"
	"time"

	"kiosk/services/logger"
	"kiosk/storage"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = time.Minute

// SweepOrphans chạy một lượt dọn ảnh mồ côi
func SweepOrphans(sweeper storage.OrphanSweeper, grace time.Duration, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	removed, err := sweeper.SweepOrphans(ctx, grace, time.Now())
	if err != nil {
		log.Error("Orphan sweep failed after removing %d files: %v", removed, err)
		return
	}
	if removed > 0 {
		log.Info("Orphan sweep removed %d selfie files without records", removed)
	}
}

// InitCronJobs đăng ký job dọn ảnh mồ côi và khởi động cron
func InitCronJobs(c *cron.Cron, spec string, sweeper storage.OrphanSweeper, grace time.Duration, log logger.Logger) error {
	if sweeper != nil {
		if _, err := c.AddFunc(spec, func() {
			SweepOrphans(sweeper, grace, log)
		}); err != nil {
			return err
		}
	}

	c.Start()
	log.Info("Cron jobs initialized successfully (%d entries)", len(c.Entries()))
	return nil
}
