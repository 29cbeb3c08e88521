package model

// RentHistory is the append-only ledger of rent-paid events. It is the source
// of truth for the "collected rent" aggregation; duplicate rows for the same
// bed and month are possible.
type RentHistory struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	BedID    int64   `gorm:"index;not null" json:"bedId"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Month    string  `gorm:"size:7;not null" json:"month"`
	PaidDate string  `gorm:"size:32;not null" json:"paidDate"`
}
