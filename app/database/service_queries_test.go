package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceCostClosesOpenTariff(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	cost := &models.ServiceCost{
		HostelID:      "hostel-1",
		ServiceID:     "service-1",
		UnitCost:      decimal.NewFromInt(4000),
		Unit:          "kWh",
		EffectiveFrom: from,
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE service_costs SET effective_to").
		WithArgs(from, "hostel-1", "service-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM service_costs").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO service_costs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("cost-1", time.Now()))
	mock.ExpectCommit()

	err = CreateServiceCost(db, cost)
	require.NoError(t, err)
	assert.Equal(t, "cost-1", cost.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateServiceCostRejectsOverlap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	cost := &models.ServiceCost{
		HostelID:      "hostel-1",
		ServiceID:     "service-1",
		UnitCost:      decimal.NewFromInt(4000),
		EffectiveFrom: from,
		EffectiveTo:   &to,
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE service_costs SET effective_to").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM service_costs").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err = CreateServiceCost(db, cost)
	assert.ErrorIs(t, err, ErrTariffOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}
