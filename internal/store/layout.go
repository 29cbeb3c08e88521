package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// SetupHostel creates the room/bed layout for an owner and marks setup as
// complete. The whole operation is one transaction; a failure mid-loop rolls
// everything back.
func (s *gormStore) SetupHostel(ctx context.Context, ownerID int64, hostelName string, totalFloors int, rooms []RoomSpec) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("id = ?", ownerID).
			Updates(map[string]any{
				"hostel_name":    hostelName,
				"total_floors":   totalFloors,
				"setup_complete": true,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		for _, spec := range rooms {
			room := model.Room{
				UserID:      ownerID,
				FloorNumber: spec.Floor,
				RoomNumber:  spec.RoomNo,
				Capacity:    spec.Capacity,
			}
			if err := tx.Create(&room).Error; err != nil {
				return fmt.Errorf("failed to create room %q: %w", spec.RoomNo, err)
			}
			for i := 0; i < spec.Capacity; i++ {
				bed := model.Bed{RoomID: room.ID, BedIndex: i}
				if err := tx.Create(&bed).Error; err != nil {
					return fmt.Errorf("failed to create bed %d in room %q: %w", i, spec.RoomNo, err)
				}
			}
		}
		return nil
	})
}

// ResetHostel wipes an owner's layout, the rent history of its beds and the
// setup flag. Irreversible.
func (s *gormStore) ResetHostel(ctx context.Context, ownerID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roomIDs := func() *gorm.DB {
			return tx.Model(&model.Room{}).Select("id").Where("user_id = ?", ownerID)
		}
		bedIDs := tx.Model(&model.Bed{}).Select("id").Where("room_id IN (?)", roomIDs())

		if err := tx.Where("bed_id IN (?)", bedIDs).Delete(&model.RentHistory{}).Error; err != nil {
			return fmt.Errorf("failed to delete rent history for owner %d: %w", ownerID, err)
		}
		if err := tx.Where("room_id IN (?)", roomIDs()).Delete(&model.Bed{}).Error; err != nil {
			return fmt.Errorf("failed to delete beds for owner %d: %w", ownerID, err)
		}
		if err := tx.Where("user_id = ?", ownerID).Delete(&model.Room{}).Error; err != nil {
			return fmt.Errorf("failed to delete rooms for owner %d: %w", ownerID, err)
		}
		res := tx.Model(&model.User{}).
			Where("id = ?", ownerID).
			Update("setup_complete", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AddBed appends one empty bed at the next index and bumps room capacity.
func (s *gormStore) AddBed(ctx context.Context, roomID int64) (*model.Bed, error) {
	var bed model.Bed
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			return translateNotFound(err)
		}

		bed = model.Bed{RoomID: room.ID, BedIndex: room.Capacity}
		if err := tx.Create(&bed).Error; err != nil {
			return fmt.Errorf("failed to create bed in room %d: %w", roomID, err)
		}
		return tx.Model(&room).Update("capacity", room.Capacity+1).Error
	})
	if err != nil {
		return nil, err
	}
	return &bed, nil
}

// RemoveBed deletes the highest-index bed of a room and decrements capacity.
// Only an unoccupied highest-index bed may be removed.
func (s *gormStore) RemoveBed(ctx context.Context, roomID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			return translateNotFound(err)
		}

		var bed model.Bed
		err := tx.Where("room_id = ?", roomID).
			Order("bed_index DESC").
			First(&bed).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoBeds
		}
		if err != nil {
			return err
		}
		if bed.IsOccupied {
			return ErrBedOccupied
		}

		if err := tx.Where("bed_id = ?", bed.ID).Delete(&model.RentHistory{}).Error; err != nil {
			return fmt.Errorf("failed to delete rent history for bed %d: %w", bed.ID, err)
		}
		if err := tx.Delete(&bed).Error; err != nil {
			return fmt.Errorf("failed to delete bed %d: %w", bed.ID, err)
		}
		return tx.Model(&room).Update("capacity", room.Capacity-1).Error
	})
}

// RoomOwner returns the ID of the owner the room belongs to.
func (s *gormStore) RoomOwner(ctx context.Context, roomID int64) (int64, error) {
	var room model.Room
	err := s.db.WithContext(ctx).Select("user_id").First(&room, roomID).Error
	if err != nil {
		return 0, translateNotFound(err)
	}
	return room.UserID, nil
}

// BedOwner returns the ID of the owner whose room contains the bed.
func (s *gormStore) BedOwner(ctx context.Context, bedID int64) (int64, error) {
	var ownerID int64
	res := s.db.WithContext(ctx).Model(&model.Bed{}).
		Joins("JOIN rooms ON rooms.id = beds.room_id").
		Where("beds.id = ?", bedID).
		Select("rooms.user_id").
		Scan(&ownerID)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return ownerID, nil
}

// Dashboard returns the owner's rooms with nested beds, rooms ordered by
// floor and room number, beds by index.
func (s *gormStore) Dashboard(ctx context.Context, ownerID int64) ([]model.Room, error) {
	rooms := make([]model.Room, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("floor_number, room_number").
		Preload("Beds", func(db *gorm.DB) *gorm.DB {
			return db.Order("beds.bed_index ASC")
		}).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
