package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// ImportTenants bulk-books parsed tenant records. Per record: skip if an
// occupied bed already matches the name or mobile (duplicate heuristic),
// report an error if the room number is unknown, otherwise book the
// lowest-index empty bed in the room, appending a new bed when the room is
// full. The batch runs in one transaction; per-record errors accumulate in
// the report without aborting the rest.
func (s *gormStore) ImportTenants(ctx context.Context, ownerID int64, records []ImportRecord) (*ImportReport, error) {
	report := &ImportReport{Errors: []string{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			if rec.Name == "" && rec.Mobile == "" {
				report.Errors = append(report.Errors, "record with empty name and mobile")
				continue
			}

			dup, err := s.hasOccupiedDuplicate(tx, ownerID, rec)
			if err != nil {
				return err
			}
			if dup {
				report.Skipped++
				continue
			}

			var room model.Room
			err = tx.Where("user_id = ? AND room_number = ?", ownerID, rec.RoomNo).
				First(&room).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				report.Errors = append(report.Errors, fmt.Sprintf("room %q not found", rec.RoomNo))
				continue
			}
			if err != nil {
				return err
			}

			bed, err := s.pickOrAppendBed(tx, &room)
			if err != nil {
				return err
			}

			updates := map[string]any{
				"is_occupied":    true,
				"client_name":    rec.Name,
				"client_mobile":  rec.Mobile,
				"join_date":      rec.JoinDate,
				"last_rent_paid": nil,
			}
			if err := tx.Model(bed).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to book bed %d for %q: %w", bed.ID, rec.Name, err)
			}
			report.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// hasOccupiedDuplicate matches on name or mobile, but an empty field never
// participates: two tenants without a mobile number are not duplicates of
// each other. Records with both fields empty are rejected before this runs.
func (s *gormStore) hasOccupiedDuplicate(tx *gorm.DB, ownerID int64, rec ImportRecord) (bool, error) {
	q := tx.Model(&model.Bed{}).
		Joins("JOIN rooms ON rooms.id = beds.room_id").
		Where("rooms.user_id = ? AND beds.is_occupied = ?", ownerID, true)
	switch {
	case rec.Name != "" && rec.Mobile != "":
		q = q.Where("beds.client_name = ? OR beds.client_mobile = ?", rec.Name, rec.Mobile)
	case rec.Name != "":
		q = q.Where("beds.client_name = ?", rec.Name)
	default:
		q = q.Where("beds.client_mobile = ?", rec.Mobile)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

// pickOrAppendBed returns the lowest-index empty bed of the room, creating a
// new one (and bumping capacity) when every bed is taken.
func (s *gormStore) pickOrAppendBed(tx *gorm.DB, room *model.Room) (*model.Bed, error) {
	var bed model.Bed
	err := tx.Where("room_id = ? AND is_occupied = ?", room.ID, false).
		Order("bed_index ASC").
		First(&bed).Error
	if err == nil {
		return &bed, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bed = model.Bed{RoomID: room.ID, BedIndex: room.Capacity}
	if err := tx.Create(&bed).Error; err != nil {
		return nil, fmt.Errorf("failed to append bed to room %d: %w", room.ID, err)
	}
	room.Capacity++
	if err := tx.Model(&model.Room{}).Where("id = ?", room.ID).
		Update("capacity", room.Capacity).Error; err != nil {
		return nil, err
	}
	return &bed, nil
}
