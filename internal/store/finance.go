package store

import (
	"context"

	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// Finance computes the read-only financial snapshot for an owner and month.
// Rent is scoped to the given "YYYY-MM" month; expense and salary totals are
// all-time, matching how the finance page has always reported them. Pending
// rent has no floor at zero: duplicate ledger rows can push it negative.
func (s *gormStore) Finance(ctx context.Context, ownerID int64, month string) (*FinanceSnapshot, error) {
	db := s.db.WithContext(ctx)

	var potential float64
	err := db.Model(&model.Bed{}).
		Joins("JOIN rooms ON rooms.id = beds.room_id").
		Where("rooms.user_id = ? AND beds.is_occupied = ?", ownerID, true).
		Select("COALESCE(SUM(beds.rent_amount), 0)").
		Scan(&potential).Error
	if err != nil {
		return nil, err
	}

	var collected float64
	err = db.Model(&model.RentHistory{}).
		Joins("JOIN beds ON beds.id = rent_histories.bed_id").
		Joins("JOIN rooms ON rooms.id = beds.room_id").
		Where("rooms.user_id = ? AND rent_histories.month = ?", ownerID, month).
		Select("COALESCE(SUM(rent_histories.amount), 0)").
		Scan(&collected).Error
	if err != nil {
		return nil, err
	}

	expenses, err := s.sumByOwner(db, &model.Expense{}, "amount", ownerID)
	if err != nil {
		return nil, err
	}
	salaries, err := s.sumByOwner(db, &model.Worker{}, "salary", ownerID)
	if err != nil {
		return nil, err
	}

	outflow := expenses + salaries
	return &FinanceSnapshot{
		Month: month,
		Rent: RentTotals{
			Total:     potential,
			Collected: collected,
			Pending:   potential - collected,
		},
		TotalExpenses: expenses,
		TotalSalaries: salaries,
		Summary: ProfitSummary{
			Income:  collected,
			Outflow: outflow,
			Profit:  collected - outflow,
		},
	}, nil
}

func (s *gormStore) sumByOwner(db *gorm.DB, m any, column string, ownerID int64) (float64, error) {
	var total float64
	err := db.Model(m).
		Where("user_id = ?", ownerID).
		Select("COALESCE(SUM(" + column + "), 0)").
		Scan(&total).Error
	return total, err
}
