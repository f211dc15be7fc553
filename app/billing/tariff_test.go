package billing

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnitCost_SingleWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	onDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT unit_cost, COALESCE").
		WithArgs("hostel-1", "svc-elec", onDate).
		WillReturnRows(sqlmock.NewRows([]string{"unit_cost", "unit"}).AddRow("3500", "kWh"))

	cost, unit, err := ResolveUnitCost(db, "hostel-1", "svc-elec", onDate)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.NewFromInt(3500)), "expected 3500, got %s", cost)
	assert.Equal(t, "kWh", unit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveUnitCost_NoWindowCoversDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	onDate := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT unit_cost, COALESCE").
		WithArgs("hostel-1", "svc-elec", onDate).
		WillReturnRows(sqlmock.NewRows([]string{"unit_cost", "unit"}))

	_, _, err = ResolveUnitCost(db, "hostel-1", "svc-elec", onDate)
	assert.ErrorIs(t, err, ErrTariffNotFound)
}

func TestResolveUnitCost_OverlappingWindowsRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// two windows covering the same date violate the non-overlap invariant
	onDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT unit_cost, COALESCE").
		WithArgs("hostel-1", "svc-elec", onDate).
		WillReturnRows(sqlmock.NewRows([]string{"unit_cost", "unit"}).
			AddRow("3500", "kWh").
			AddRow("4000", "kWh"))

	_, _, err = ResolveUnitCost(db, "hostel-1", "svc-elec", onDate)
	assert.ErrorIs(t, err, ErrAmbiguousTariff)
}
