package billing

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readingColumns() []string {
	return []string{"id", "room_id", "service_id", "reading", "billing_month", "billing_year",
		"is_billed", "created_at", "updated_at"}
}

func priorReadingRow(reading float64, month, year int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(readingColumns()).
		AddRow("reading-1", "room-1", "svc-elec", reading, month, year, true, now, now)
}

func TestReconcile_ConsumptionFromPriorReading(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// January reading was 100, February is 150
	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-elec", 2, 2024).
		WillReturnRows(priorReadingRow(100, 1, 2024))

	previous, consumed, err := Reconcile(db, "room-1", "svc-elec", 2, 2024, 150)
	require.NoError(t, err)
	assert.Equal(t, 100.0, previous)
	assert.Equal(t, 50.0, consumed)
}

func TestReconcile_NoPriorReadingStartsFromZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-water", 3, 2024).
		WillReturnRows(sqlmock.NewRows(readingColumns()))

	previous, consumed, err := Reconcile(db, "room-1", "svc-water", 3, 2024, 20)
	require.NoError(t, err)
	assert.Equal(t, 0.0, previous)
	assert.Equal(t, 20.0, consumed)
}

func TestReconcile_MeterRegressionRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-elec", 2, 2024).
		WillReturnRows(priorReadingRow(100, 1, 2024))

	_, _, err = Reconcile(db, "room-1", "svc-elec", 2, 2024, 90)
	assert.ErrorIs(t, err, ErrInvalidReading)
}

func TestRecordReading_DuplicatePeriodRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-elec", 2, 2024).
		WillReturnRows(priorReadingRow(100, 1, 2024))
	mock.ExpectQuery("INSERT INTO meter_readings").
		WithArgs("room-1", "svc-elec", 150.0, 2, 2024).
		WillReturnError(&pq.Error{Code: "23505"})

	reading := &models.MeterReading{
		RoomID: "room-1", ServiceID: "svc-elec",
		Reading: 150, BillingMonth: 2, BillingYear: 2024,
	}
	err = RecordReading(db, reading)
	assert.ErrorIs(t, err, ErrDuplicateReading)
}

func TestRecordReading_RegressionRejectedBeforeInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-elec", 2, 2024).
		WillReturnRows(priorReadingRow(100, 1, 2024))

	reading := &models.MeterReading{
		RoomID: "room-1", ServiceID: "svc-elec",
		Reading: 80, BillingMonth: 2, BillingYear: 2024,
	}
	err = RecordReading(db, reading)
	assert.ErrorIs(t, err, ErrInvalidReading)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func editableReadingRow(reading float64, month, year int, billed bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(readingColumns()).
		AddRow("reading-2", "room-1", "svc-elec", reading, month, year, billed, now, now)
}

func TestEditReading_RegressionRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("reading-2").
		WillReturnRows(editableReadingRow(150, 2, 2024, false))
	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-elec", 2, 2024).
		WillReturnRows(priorReadingRow(100, 1, 2024))

	// correcting February below January's 100 must fail at edit time
	_, err = EditReading(db, "reading-2", 90)
	assert.ErrorIs(t, err, ErrInvalidReading)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditReading_BilledReadingFrozen(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("reading-2").
		WillReturnRows(editableReadingRow(150, 2, 2024, true))

	_, err = EditReading(db, "reading-2", 160)
	assert.ErrorIs(t, err, database.ErrReadingBilled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditReading_ValidCorrection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("reading-2").
		WillReturnRows(editableReadingRow(150, 2, 2024, false))
	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-elec", 2, 2024).
		WillReturnRows(priorReadingRow(100, 1, 2024))
	mock.ExpectQuery("SELECT is_billed FROM meter_readings").
		WithArgs("reading-2").
		WillReturnRows(sqlmock.NewRows([]string{"is_billed"}).AddRow(false))
	mock.ExpectExec("UPDATE meter_readings SET reading").
		WithArgs(155.0, "reading-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := EditReading(db, "reading-2", 155)
	require.NoError(t, err)
	assert.Equal(t, 155.0, updated.Reading)
	assert.NoError(t, mock.ExpectationsWereMet())
}
