package model

import "time"

// PushSubscription holds a browser push subscription belonging to an owner,
// used for rent-reminder notifications.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	UserID    int64     `gorm:"index;not null" json:"userId"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `json:"-"`
}
