package billing

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveOccupants_MidPeriodMoveOutStillCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// tenant T lived 2024-03-10 to 2024-03-20, another tenant stayed:
	// both overlap March and must be counted
	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("room-1", periodStart, periodEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := ActiveOccupants(db, "room-1", periodStart, periodEnd)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestActiveOccupants_VacantRoomIsZeroNotError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("room-2", periodStart, periodEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := ActiveOccupants(db, "room-2", periodStart, periodEnd)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRepresentativeTenant_EarliestMoveInWins(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT tenant_id FROM room_tenancies").
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id"}).AddRow("tenant-a"))

	tenantID, err := RepresentativeTenant(db, "room-1")
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", tenantID)
}

func TestRepresentativeTenant_VacantRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT tenant_id FROM room_tenancies").
		WithArgs("room-2").
		WillReturnError(sql.ErrNoRows)

	_, err = RepresentativeTenant(db, "room-2")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
