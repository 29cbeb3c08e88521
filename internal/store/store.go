package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	// Users and admin.
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUserByID(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, userID int64, hash string) error
	UpdateProfile(ctx context.Context, userID int64, hostelName, email, mobile string) error
	ListOwners(ctx context.Context) ([]model.User, error)
	SetApproval(ctx context.Context, userID int64, approved bool) error
	DeleteOwner(ctx context.Context, userID int64) error

	// Layout.
	SetupHostel(ctx context.Context, ownerID int64, hostelName string, totalFloors int, rooms []RoomSpec) error
	ResetHostel(ctx context.Context, ownerID int64) error
	AddBed(ctx context.Context, roomID int64) (*model.Bed, error)
	RemoveBed(ctx context.Context, roomID int64) error
	Dashboard(ctx context.Context, ownerID int64) ([]model.Room, error)
	RoomOwner(ctx context.Context, roomID int64) (int64, error)
	BedOwner(ctx context.Context, bedID int64) (int64, error)

	// Booking.
	Book(ctx context.Context, bedID int64, tenant Tenant) error
	UpdateTenant(ctx context.Context, bedID int64, update TenantUpdate) error
	SetLeaveDate(ctx context.Context, bedID int64, leaveDate *string) error
	Vacate(ctx context.Context, bedID int64) error
	MarkRentPaid(ctx context.Context, bedID int64, month string, amount float64) error
	RentHistory(ctx context.Context, bedID int64, limit int) ([]model.RentHistory, error)
	ImportTenants(ctx context.Context, ownerID int64, records []ImportRecord) (*ImportReport, error)

	// Ledger.
	AddExpense(ctx context.Context, expense *model.Expense) error
	DeleteExpense(ctx context.Context, ownerID, expenseID int64) error
	ListExpenses(ctx context.Context, ownerID int64) ([]model.Expense, error)
	AddWorker(ctx context.Context, worker *model.Worker) error
	DeleteWorker(ctx context.Context, ownerID, workerID int64) error
	ListWorkers(ctx context.Context, ownerID int64) ([]model.Worker, error)

	// Finance.
	Finance(ctx context.Context, ownerID int64, month string) (*FinanceSnapshot, error)

	// Push subscriptions.
	SaveSubscription(ctx context.Context, sub *model.PushSubscription) error
	DeleteSubscription(ctx context.Context, endpoint string) error
	FindSubscription(ctx context.Context, endpoint string) (*model.PushSubscription, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (s *gormStore) FindUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormStore) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) UpdateProfile(ctx context.Context, userID int64, hostelName, email, mobile string) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"hostel_name": hostelName,
			"email":       email,
			"mobile":      mobile,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListOwners(ctx context.Context) ([]model.User, error) {
	var owners []model.User
	err := s.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("id").
		Find(&owners).Error
	return owners, err
}

func (s *gormStore) SetApproval(ctx context.Context, userID int64, approved bool) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("is_approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOwner removes an owner and everything it transitively owns. Children
// are deleted before parents; the whole cascade is one transaction.
func (s *gormStore) DeleteOwner(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roomIDs := func() *gorm.DB {
			return tx.Model(&model.Room{}).Select("id").Where("user_id = ?", userID)
		}
		bedIDs := tx.Model(&model.Bed{}).Select("id").Where("room_id IN (?)", roomIDs())

		if err := tx.Where("bed_id IN (?)", bedIDs).Delete(&model.RentHistory{}).Error; err != nil {
			return fmt.Errorf("failed to delete rent history for owner %d: %w", userID, err)
		}
		if err := tx.Where("room_id IN (?)", roomIDs()).Delete(&model.Bed{}).Error; err != nil {
			return fmt.Errorf("failed to delete beds for owner %d: %w", userID, err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Room{}).Error; err != nil {
			return fmt.Errorf("failed to delete rooms for owner %d: %w", userID, err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Expense{}).Error; err != nil {
			return fmt.Errorf("failed to delete expenses for owner %d: %w", userID, err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Worker{}).Error; err != nil {
			return fmt.Errorf("failed to delete workers for owner %d: %w", userID, err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.PushSubscription{}).Error; err != nil {
			return fmt.Errorf("failed to delete subscriptions for owner %d: %w", userID, err)
		}
		res := tx.Delete(&model.User{}, userID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete user %d: %w", userID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
