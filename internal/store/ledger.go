package store

import (
	"context"

	"hostel-manager-backend/internal/model"
)

func (s *gormStore) AddExpense(ctx context.Context, expense *model.Expense) error {
	return s.db.WithContext(ctx).Create(expense).Error
}

// DeleteExpense removes a single expense. The owner filter keeps one owner
// from deleting another's entries.
func (s *gormStore) DeleteExpense(ctx context.Context, ownerID, expenseID int64) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", expenseID, ownerID).
		Delete(&model.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListExpenses(ctx context.Context, ownerID int64) ([]model.Expense, error) {
	expenses := make([]model.Expense, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&expenses).Error
	return expenses, err
}

func (s *gormStore) AddWorker(ctx context.Context, worker *model.Worker) error {
	return s.db.WithContext(ctx).Create(worker).Error
}

func (s *gormStore) DeleteWorker(ctx context.Context, ownerID, workerID int64) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", workerID, ownerID).
		Delete(&model.Worker{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListWorkers(ctx context.Context, ownerID int64) ([]model.Worker, error) {
	workers := make([]model.Worker, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id").
		Find(&workers).Error
	return workers, err
}
