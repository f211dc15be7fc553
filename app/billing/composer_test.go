package billing

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomRow(roomID, hostelID, rent string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "hostel_id", "name", "floor", "area", "max_occupants",
		"monthly_rent", "is_available", "created_at", "updated_at"}).
		AddRow(roomID, hostelID, "Room 101", 1, 20.0, 2, rent, true, now, now)
}

func serviceRows(rows ...[]driverValue) *sqlmock.Rows {
	now := time.Now()
	out := sqlmock.NewRows([]string{"id", "name", "charging_method", "created_at", "updated_at"})
	for _, r := range rows {
		out.AddRow(r[0], r[1], r[2], now, now)
	}
	return out
}

type driverValue = interface{}

func TestGenerateMonthlyInvoice_MeteredService(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	periodStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs("room-1", 2, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT id, hostel_id, name").WithArgs("room-1").
		WillReturnRows(roomRow("room-1", "hostel-1", "2000000"))
	mock.ExpectQuery("SELECT s.id, s.name, s.charging_method").WithArgs("hostel-1").
		WillReturnRows(serviceRows([]driverValue{"svc-elec", "Electricity", "per_unit"}))
	mock.ExpectQuery("SELECT unit_cost, COALESCE").
		WithArgs("hostel-1", "svc-elec", periodStart).
		WillReturnRows(sqlmock.NewRows([]string{"unit_cost", "unit"}).AddRow("3500", "kWh"))
	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-elec", 2, 2024).
		WillReturnRows(sqlmock.NewRows(readingColumns()).
			AddRow("reading-feb", "room-1", "svc-elec", 150.0, 2, 2024, false, now, now))
	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-elec", 2, 2024).
		WillReturnRows(priorReadingRow(100, 1, 2024))
	mock.ExpectQuery("INSERT INTO invoices").
		WithArgs("room-1", 2, 2024, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("invoice-1", now, now))
	mock.ExpectQuery("INSERT INTO invoice_details").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("detail-1"))
	mock.ExpectQuery("INSERT INTO invoice_details").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("detail-2"))
	mock.ExpectExec("UPDATE meter_readings SET is_billed").
		WithArgs("reading-feb").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	invoice, err := GenerateMonthlyInvoice(db, "room-1", 2, 2024)
	require.NoError(t, err)
	require.Len(t, invoice.Details, 2)

	elec := invoice.Details[0]
	assert.Equal(t, 100.0, elec.PreviousReading)
	assert.Equal(t, 150.0, elec.CurrentReading)
	assert.True(t, elec.UnitCost.Equal(decimal.NewFromInt(3500)))
	assert.True(t, elec.ActualCost.Equal(decimal.NewFromInt(175000)),
		"50 kWh at 3500 should cost 175000, got %s", elec.ActualCost)

	rent := invoice.Details[1]
	assert.True(t, rent.IsRentRoom)
	assert.True(t, rent.ActualCost.Equal(decimal.NewFromInt(2000000)))

	assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromInt(2175000)))
	assert.True(t, invoice.TotalAmount.Equal(invoice.SumDetails()),
		"invoice total must equal the sum of its line items")
	assert.False(t, invoice.IsPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateMonthlyInvoice_PerPersonService(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs("room-1", 3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT id, hostel_id, name").WithArgs("room-1").
		WillReturnRows(roomRow("room-1", "hostel-1", "1500000"))
	mock.ExpectQuery("SELECT s.id, s.name, s.charging_method").WithArgs("hostel-1").
		WillReturnRows(serviceRows([]driverValue{"svc-garbage", "Garbage", "per_person"}))
	mock.ExpectQuery("SELECT unit_cost, COALESCE").
		WithArgs("hostel-1", "svc-garbage", periodStart).
		WillReturnRows(sqlmock.NewRows([]string{"unit_cost", "unit"}).AddRow("30000", "person"))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("room-1", periodStart, periodEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("INSERT INTO invoices").
		WithArgs("room-1", 3, 2024, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("invoice-2", now, now))
	mock.ExpectQuery("INSERT INTO invoice_details").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("detail-1"))
	mock.ExpectQuery("INSERT INTO invoice_details").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("detail-2"))
	mock.ExpectCommit()

	invoice, err := GenerateMonthlyInvoice(db, "room-1", 3, 2024)
	require.NoError(t, err)
	require.Len(t, invoice.Details, 2)

	garbage := invoice.Details[0]
	assert.True(t, garbage.ActualCost.Equal(decimal.NewFromInt(60000)),
		"2 occupants at 30000 should cost 60000, got %s", garbage.ActualCost)
	assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromInt(1560000)))
}

func TestGenerateMonthlyInvoice_DuplicatePeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs("room-1", 2, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err = GenerateMonthlyInvoice(db, "room-1", 2, 2024)
	assert.ErrorIs(t, err, ErrDuplicateInvoice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateMonthlyInvoice_LosesInsertRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// a concurrent request inserted between the existence check and our
	// insert; the unique index turns the race into ErrDuplicateInvoice
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs("room-1", 2, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT id, hostel_id, name").WithArgs("room-1").
		WillReturnRows(roomRow("room-1", "hostel-1", "2000000"))
	mock.ExpectQuery("SELECT s.id, s.name, s.charging_method").WithArgs("hostel-1").
		WillReturnRows(serviceRows())
	mock.ExpectQuery("INSERT INTO invoices").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err = GenerateMonthlyInvoice(db, "room-1", 2, 2024)
	assert.ErrorIs(t, err, ErrDuplicateInvoice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateMonthlyInvoice_MissingReading(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	periodStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs("room-1", 2, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT id, hostel_id, name").WithArgs("room-1").
		WillReturnRows(roomRow("room-1", "hostel-1", "2000000"))
	mock.ExpectQuery("SELECT s.id, s.name, s.charging_method").WithArgs("hostel-1").
		WillReturnRows(serviceRows([]driverValue{"svc-water", "Water", "per_unit"}))
	mock.ExpectQuery("SELECT unit_cost, COALESCE").
		WithArgs("hostel-1", "svc-water", periodStart).
		WillReturnRows(sqlmock.NewRows([]string{"unit_cost", "unit"}).AddRow("15000", "m3"))
	mock.ExpectQuery("SELECT id, room_id, service_id, reading").
		WithArgs("room-1", "svc-water", 2, 2024).
		WillReturnRows(sqlmock.NewRows(readingColumns()))
	mock.ExpectRollback()

	_, err = GenerateMonthlyInvoice(db, "room-1", 2, 2024)
	assert.ErrorIs(t, err, ErrMissingReading)
}

func TestGenerateMonthlyInvoice_InvalidPeriod(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = GenerateMonthlyInvoice(db, "room-1", 13, 2024)
	assert.Error(t, err)

	_, err = GenerateMonthlyInvoice(db, "room-1", 2, 1999)
	assert.Error(t, err)
}
