package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// Book occupies an empty bed with tenant details. The update is guarded with
// a compare-and-set on is_occupied so two concurrent bookings of the same bed
// cannot both succeed; the loser gets ErrBedOccupied.
func (s *gormStore) Book(ctx context.Context, bedID int64, tenant Tenant) error {
	res := s.db.WithContext(ctx).Model(&model.Bed{}).
		Where("id = ? AND is_occupied = ?", bedID, false).
		Updates(map[string]any{
			"is_occupied":         true,
			"client_name":         tenant.ClientName,
			"client_mobile":       tenant.ClientMobile,
			"join_date":           tenant.JoinDate,
			"leave_date":          tenant.LeaveDate,
			"advance_amount":      tenant.AdvanceAmount,
			"maintenance_charges": tenant.MaintenanceCharges,
			"rent_amount":         tenant.RentAmount,
			"last_rent_paid":      nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.classifyBedConflict(ctx, bedID, ErrBedOccupied)
	}
	return nil
}

// UpdateTenant mutates the financial fields and leave date of an occupied
// bed without touching occupancy.
func (s *gormStore) UpdateTenant(ctx context.Context, bedID int64, update TenantUpdate) error {
	res := s.db.WithContext(ctx).Model(&model.Bed{}).
		Where("id = ? AND is_occupied = ?", bedID, true).
		Updates(map[string]any{
			"advance_amount":      update.AdvanceAmount,
			"maintenance_charges": update.MaintenanceCharges,
			"rent_amount":         update.RentAmount,
			"leave_date":          update.LeaveDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.classifyBedConflict(ctx, bedID, ErrBedVacant)
	}
	return nil
}

// SetLeaveDate sets or clears the vacate-notice date of an occupied bed.
func (s *gormStore) SetLeaveDate(ctx context.Context, bedID int64, leaveDate *string) error {
	res := s.db.WithContext(ctx).Model(&model.Bed{}).
		Where("id = ? AND is_occupied = ?", bedID, true).
		Update("leave_date", leaveDate)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.classifyBedConflict(ctx, bedID, ErrBedVacant)
	}
	return nil
}

// Vacate clears an occupied bed back to the empty state: every tenant field
// goes to NULL.
func (s *gormStore) Vacate(ctx context.Context, bedID int64) error {
	res := s.db.WithContext(ctx).Model(&model.Bed{}).
		Where("id = ? AND is_occupied = ?", bedID, true).
		Updates(map[string]any{
			"is_occupied":         false,
			"client_name":         nil,
			"client_mobile":       nil,
			"join_date":           nil,
			"leave_date":          nil,
			"advance_amount":      nil,
			"maintenance_charges": nil,
			"rent_amount":         nil,
			"last_rent_paid":      nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.classifyBedConflict(ctx, bedID, ErrBedVacant)
	}
	return nil
}

// MarkRentPaid records a rent payment: the bed's paid marker moves to the
// given month and a ledger row is appended, both in one transaction. The
// ledger is append-only; paying the same month twice appends two rows.
func (s *gormStore) MarkRentPaid(ctx context.Context, bedID int64, month string, amount float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Bed{}).
			Where("id = ? AND is_occupied = ?", bedID, true).
			Update("last_rent_paid", month)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return s.classifyBedConflictTx(tx, bedID, ErrBedVacant)
		}

		entry := model.RentHistory{
			BedID:    bedID,
			Amount:   amount,
			Month:    month,
			PaidDate: time.Now().Format("2006-01-02"),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append rent history for bed %d: %w", bedID, err)
		}
		return nil
	})
}

// RentHistory returns the most recent payment entries for a bed, newest
// first.
func (s *gormStore) RentHistory(ctx context.Context, bedID int64, limit int) ([]model.RentHistory, error) {
	entries := make([]model.RentHistory, 0, limit)
	err := s.db.WithContext(ctx).
		Where("bed_id = ?", bedID).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// classifyBedConflict distinguishes "bed missing" from "bed in the wrong
// occupancy state" after a guarded update matched zero rows.
func (s *gormStore) classifyBedConflict(ctx context.Context, bedID int64, stateErr error) error {
	return s.classifyBedConflictTx(s.db.WithContext(ctx), bedID, stateErr)
}

func (s *gormStore) classifyBedConflictTx(tx *gorm.DB, bedID int64, stateErr error) error {
	var bed model.Bed
	if err := tx.First(&bed, bedID).Error; err != nil {
		return translateNotFound(err)
	}
	return stateErr
}
