package model

import "time"

// Room groups beds on a floor. RoomNumber is a free-form label ("G-101").
// Capacity always equals the number of bed rows belonging to the room; every
// capacity change is paired with a bed insert or delete in the same
// transaction.
type Room struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"index;not null" json:"userId"`
	FloorNumber int       `gorm:"not null" json:"floor"`
	RoomNumber  string    `gorm:"size:32;not null" json:"number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// Associations
	Beds []Bed `gorm:"foreignKey:RoomID" json:"beds"`
}
