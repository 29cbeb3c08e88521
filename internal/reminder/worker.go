package reminder

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// PushSender defines the interface for sending a web push notification.
type PushSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real PushSender backed by the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// Job asks the pool to remind one owner about unpaid rent.
type Job struct {
	OwnerID int64
	Month   string
	DueBeds int
}

// WorkerPool manages a pool of workers for sending rent reminders.
type WorkerPool struct {
	size    int
	jobs    chan Job
	db      *gorm.DB
	webpush *webpush.Options
	sender  PushSender
}

// NewWorkerPool creates a new reminder worker pool.
func NewWorkerPool(size int, db *gorm.DB, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan Job, size),
		db:      db,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Reminder worker %d started", id)
	for {
		select {
		case job := <-wp.jobs:
			wp.remindOwner(ctx, job)
		case <-ctx.Done():
			log.Printf("Reminder worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a job to the worker pool. The job is dropped when the
// context is cancelled before a worker can accept it.
func (wp *WorkerPool) Dispatch(ctx context.Context, job Job) {
	select {
	case wp.jobs <- job:
	case <-ctx.Done():
	}
}

// remindOwner fetches the owner's subscriptions and pushes one reminder per
// browser.
func (wp *WorkerPool) remindOwner(ctx context.Context, job Job) {
	var subscriptions []model.PushSubscription
	err := wp.db.WithContext(ctx).
		Where("user_id = ?", job.OwnerID).
		Find(&subscriptions).Error
	if err != nil {
		log.Printf("Error fetching subscriptions for owner %d: %v", job.OwnerID, err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	hostelLabel := "your hostel"
	var owner model.User
	if err := wp.db.WithContext(ctx).
		Select("hostel_name").
		First(&owner, job.OwnerID).Error; err != nil {
		log.Printf("Error fetching owner %d: %v", job.OwnerID, err)
	} else if owner.HostelName != "" {
		hostelLabel = owner.HostelName
	}

	message := fmt.Sprintf("%d bed(s) at %s have unpaid rent for %s", job.DueBeds, hostelLabel, job.Month)
	log.Printf("Sending %d rent reminders for owner %d", len(subscriptions), job.OwnerID)
	for _, sub := range subscriptions {
		wp.push(ctx, sub, []byte(message))
	}
}

func (wp *WorkerPool) push(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending reminder to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription %s is expired. Deleting.", sub.Endpoint)
		if err := wp.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
