package model

import "time"

// Expense is a single outgoing cost entry for an owner.
type Expense struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"index;not null" json:"userId"`
	Title     string    `gorm:"size:256;not null" json:"title"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Date      string    `gorm:"size:32;not null" json:"date"`
	Category  string    `gorm:"size:64" json:"category"`
	CreatedAt time.Time `json:"-"`
}
