package model

import "time"

// Bed is the atomic occupancy unit within a room. Tenant fields are pointers:
// when IsOccupied is false all of them must be nil, and booking sets
// ClientName and JoinDate at minimum. LastRentPaid holds a "YYYY-MM" month
// string and is reset on every booking.
type Bed struct {
	ID                 int64     `gorm:"primaryKey" json:"id"`
	RoomID             int64     `gorm:"index;not null" json:"roomId"`
	BedIndex           int       `gorm:"not null" json:"index"`
	IsOccupied         bool      `gorm:"not null;default:false" json:"isOccupied"`
	ClientName         *string   `gorm:"size:256" json:"clientName"`
	ClientMobile       *string   `gorm:"size:32" json:"clientMobile"`
	JoinDate           *string   `gorm:"size:32" json:"joinDate"`
	LeaveDate          *string   `gorm:"size:32" json:"leaveDate"`
	AdvanceAmount      *float64  `json:"advance"`
	MaintenanceCharges *float64  `json:"maintenance"`
	RentAmount         *float64  `json:"rentAmount"`
	LastRentPaid       *string   `gorm:"size:7" json:"lastRentPaid"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}
