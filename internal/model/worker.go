package model

import "time"

// Worker is a salaried hostel staff member. Salary is treated as a monthly
// recurring amount by the finance aggregator.
type Worker struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"index;not null" json:"userId"`
	Name      string    `gorm:"size:256;not null" json:"name"`
	Role      string    `gorm:"size:128" json:"role"`
	Salary    float64   `gorm:"not null" json:"salary"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
