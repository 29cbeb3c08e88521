package store

import (
	"context"

	"gorm.io/gorm/clause"

	"hostel-manager-backend/internal/model"
)

// SaveSubscription inserts or replaces a push subscription keyed by endpoint.
func (s *gormStore) SaveSubscription(ctx context.Context, sub *model.PushSubscription) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth"}),
	}).Create(sub).Error
}

func (s *gormStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	return s.db.WithContext(ctx).
		Delete(&model.PushSubscription{Endpoint: endpoint}).Error
}

func (s *gormStore) FindSubscription(ctx context.Context, endpoint string) (*model.PushSubscription, error) {
	var sub model.PushSubscription
	err := s.db.WithContext(ctx).
		First(&sub, "endpoint = ?", endpoint).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &sub, nil
}
