package reminder

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"hostel-manager-backend/config"
	"hostel-manager-backend/internal/model"
)

// Scheduler periodically scans for owners with unpaid current-month rent and
// dispatches reminder jobs to the worker pool.
type Scheduler struct {
	cfg  *config.ReminderConfig
	db   *gorm.DB
	pool *WorkerPool
}

// NewScheduler creates a reminder scheduler.
func NewScheduler(cfg *config.ReminderConfig, db *gorm.DB, pool *WorkerPool) *Scheduler {
	return &Scheduler{cfg: cfg, db: db, pool: pool}
}

// Run scans immediately and then on every interval tick until the context is
// cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf("Rent reminder scheduler started (interval %s)", s.cfg.Interval)
	s.ScanOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.ScanOnce(ctx)
		case <-ctx.Done():
			log.Println("Rent reminder scheduler shutting down")
			return
		}
	}
}

// ScanOnce dispatches one job per owner that has at least one occupied bed
// whose paid marker is not the current month.
func (s *Scheduler) ScanOnce(ctx context.Context) {
	month := time.Now().Format("2006-01")

	type ownerDue struct {
		UserID int64
		Due    int
	}
	var dues []ownerDue
	err := s.db.WithContext(ctx).Model(&model.Bed{}).
		Joins("JOIN rooms ON rooms.id = beds.room_id").
		Where("beds.is_occupied = ?", true).
		Where("beds.last_rent_paid IS NULL OR beds.last_rent_paid <> ?", month).
		Select("rooms.user_id AS user_id, COUNT(*) AS due").
		Group("rooms.user_id").
		Scan(&dues).Error
	if err != nil {
		log.Printf("Reminder scan failed: %v", err)
		return
	}

	for _, due := range dues {
		s.pool.Dispatch(ctx, Job{OwnerID: due.UserID, Month: month, DueBeds: due.Due})
	}
}
