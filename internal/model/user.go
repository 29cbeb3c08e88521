package model

import "time"

// User is a hostel owner account. The admin account is seeded during
// database initialization and is the only row with IsAdmin set.
type User struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"uniqueIndex;size:128;not null" json:"username"`
	Password      string    `gorm:"not null" json:"-"` // bcrypt hash
	IsAdmin       bool      `gorm:"not null;default:false" json:"isAdmin"`
	IsApproved    bool      `gorm:"not null;default:false" json:"isApproved"`
	SetupComplete bool      `gorm:"not null;default:false" json:"setupComplete"`
	HostelName    string    `gorm:"size:256" json:"hostelName"`
	TotalFloors   int       `json:"totalFloors"`
	Email         string    `gorm:"size:256" json:"email"`
	Mobile        string    `gorm:"size:32" json:"mobile"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
