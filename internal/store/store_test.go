package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// newTestDB opens an in-memory SQLite database scoped to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Bed{},
		&model.Expense{},
		&model.Worker{},
		&model.RentHistory{},
		&model.PushSubscription{},
	)
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return gormDB
}

// seedOwner creates an approved owner account directly.
func seedOwner(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{Username: username, Password: "x", IsApproved: true}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedLayout creates an owner with one room of the given capacity and
// returns the owner, room and beds ordered by index.
func seedLayout(t *testing.T, db *gorm.DB, s Store, capacity int) (*model.User, *model.Room, []model.Bed) {
	t.Helper()
	owner := seedOwner(t, db, "owner-"+strings.ReplaceAll(t.Name(), "/", "-"))

	err := s.SetupHostel(context.Background(), owner.ID, "Sunrise PG", 1, []RoomSpec{
		{Floor: 1, RoomNo: "101", Capacity: capacity},
	})
	require.NoError(t, err)

	var room model.Room
	require.NoError(t, db.Where("user_id = ?", owner.ID).First(&room).Error)

	var beds []model.Bed
	require.NoError(t, db.Where("room_id = ?", room.ID).Order("bed_index").Find(&beds).Error)
	require.Len(t, beds, capacity)

	return owner, &room, beds
}

// assertCapacityInvariant checks that room capacity matches the bed count.
func assertCapacityInvariant(t *testing.T, db *gorm.DB, roomID int64) {
	t.Helper()
	var room model.Room
	require.NoError(t, db.First(&room, roomID).Error)
	var count int64
	require.NoError(t, db.Model(&model.Bed{}).Where("room_id = ?", roomID).Count(&count).Error)
	require.EqualValues(t, room.Capacity, count, "room capacity must equal bed count")
}

// assertBedEmpty checks the empty-state invariant: occupancy off and every
// tenant field nil.
func assertBedEmpty(t *testing.T, db *gorm.DB, bedID int64) {
	t.Helper()
	var bed model.Bed
	require.NoError(t, db.First(&bed, bedID).Error)
	require.False(t, bed.IsOccupied)
	require.Nil(t, bed.ClientName)
	require.Nil(t, bed.ClientMobile)
	require.Nil(t, bed.JoinDate)
	require.Nil(t, bed.LeaveDate)
	require.Nil(t, bed.AdvanceAmount)
	require.Nil(t, bed.MaintenanceCharges)
	require.Nil(t, bed.RentAmount)
	require.Nil(t, bed.LastRentPaid)
}
