package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveTenantInLocksRoomAndFillsToCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tenancy := &models.RoomTenancy{
		TenantID:   "tenant-2",
		RoomID:     "room-1",
		MoveInDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT max_occupants FROM rooms WHERE id = \\$1 AND deleted_at IS NULL FOR UPDATE").
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"max_occupants"}).AddRow(2))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM room_tenancies").
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO room_tenancies").
		WithArgs("tenant-2", "room-1", tenancy.MoveInDate).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("tenancy-2", now))
	// second occupant reaches capacity, room flips unavailable
	mock.ExpectExec("UPDATE rooms SET is_available = false").
		WithArgs("room-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = MoveTenantIn(db, tenancy)
	require.NoError(t, err)
	assert.Equal(t, "tenancy-2", tenancy.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveTenantInRejectsFullRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tenancy := &models.RoomTenancy{
		TenantID:   "tenant-3",
		RoomID:     "room-1",
		MoveInDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT max_occupants FROM rooms WHERE id = \\$1 AND deleted_at IS NULL FOR UPDATE").
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"max_occupants"}).AddRow(2))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM room_tenancies").
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err = MoveTenantIn(db, tenancy)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "full capacity")
	assert.NoError(t, mock.ExpectationsWereMet())
}
