package reminder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// mockSender is a mock implementation of the PushSender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// Send calls the mock SendFunc.
func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

func pushResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString("")),
	}
}

// A helper function to create an in-memory test database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Bed{},
		&model.PushSubscription{},
	)
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return gormDB
}

func TestWorkerPoolDispatch(t *testing.T) {
	db := newTestDB(t)
	wp := NewWorkerPool(1, db, &webpush.Options{})

	wp.Dispatch(context.Background(), Job{OwnerID: 7, Month: "2026-08", DueBeds: 2})

	select {
	case job := <-wp.jobs:
		assert.Equal(t, int64(7), job.OwnerID)
		assert.Equal(t, 2, job.DueBeds)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestDispatchDropsJobAfterCancel(t *testing.T) {
	db := newTestDB(t)
	wp := NewWorkerPool(1, db, &webpush.Options{})

	// Fill the queue with no workers running to drain it.
	wp.Dispatch(context.Background(), Job{OwnerID: 1, Month: "2026-08", DueBeds: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		wp.Dispatch(ctx, Job{OwnerID: 2, Month: "2026-08", DueBeds: 1})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Dispatch blocked on a full queue after context cancellation")
	}
}

func TestWorkerSendsReminder(t *testing.T) {
	db := newTestDB(t)

	owner := model.User{Username: "alice", Password: "x", IsApproved: true, HostelName: "Sunrise PG"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&model.PushSubscription{
		Endpoint: "https://push.example.com/sub/abc",
		UserID:   owner.ID,
		P256DH:   "test_p256dh",
		Auth:     "test_auth",
	}).Error)

	wp := NewWorkerPool(1, db, &webpush.Options{})

	var wg sync.WaitGroup
	wg.Add(1)
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			assert.Equal(t, "https://push.example.com/sub/abc", sub.Endpoint)
			assert.Equal(t, "test_p256dh", sub.Keys.P256dh)
			assert.Equal(t, "2 bed(s) at Sunrise PG have unpaid rent for 2026-08", string(payload))
			wg.Done()
			return pushResponse(http.StatusCreated), nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(ctx, Job{OwnerID: owner.ID, Month: "2026-08", DueBeds: 2})
	wg.Wait()
}

func TestWorkerFallbackHostelLabel(t *testing.T) {
	db := newTestDB(t)

	owner := model.User{Username: "bob", Password: "x", IsApproved: true}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&model.PushSubscription{
		Endpoint: "https://push.example.com/sub/def",
		UserID:   owner.ID,
		P256DH:   "k",
		Auth:     "a",
	}).Error)

	wp := NewWorkerPool(1, db, &webpush.Options{})

	var wg sync.WaitGroup
	wg.Add(1)
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			assert.Equal(t, "1 bed(s) at your hostel have unpaid rent for 2026-08", string(payload))
			wg.Done()
			return pushResponse(http.StatusCreated), nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(ctx, Job{OwnerID: owner.ID, Month: "2026-08", DueBeds: 1})
	wg.Wait()
}

func TestWorkerDeletesExpiredSubscription(t *testing.T) {
	db := newTestDB(t)

	owner := model.User{Username: "carol", Password: "x", IsApproved: true}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&model.PushSubscription{
		Endpoint: "https://push.example.com/sub/expired",
		UserID:   owner.ID,
		P256DH:   "k",
		Auth:     "a",
	}).Error)

	wp := NewWorkerPool(1, db, &webpush.Options{})
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			return pushResponse(http.StatusGone), nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(ctx, Job{OwnerID: owner.ID, Month: "2026-08", DueBeds: 1})

	require.Eventually(t, func() bool {
		var count int64
		if err := db.Model(&model.PushSubscription{}).Count(&count).Error; err != nil {
			return false
		}
		return count == 0
	}, 2*time.Second, 20*time.Millisecond, "expired subscription should be deleted")
}
