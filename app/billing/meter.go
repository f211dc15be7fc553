package billing

import (
	"database/sql"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
)

// Reconcile locates the most recent reading for (room, service) strictly
// before (year, month) in calendar order and validates the current reading
// against it. A room with no prior reading starts from zero (new service or
// new tenant).
func Reconcile(q database.Querier, roomID, serviceID string, month, year int, current float64) (previous float64, consumed float64, err error) {
	prior, err := database.GetPreviousMeterReading(q, roomID, serviceID, month, year)
	if err == sql.ErrNoRows {
		previous = 0
	} else if err != nil {
		return 0, 0, err
	} else {
		previous = prior.Reading
	}

	if current < previous {
		return previous, 0, ErrInvalidReading
	}
	return previous, current - previous, nil
}

// RecordReading validates and inserts a new meter reading. The reading must
// not regress below the prior period's value, and the period must not
// already have one.
func RecordReading(db *sql.DB, reading *models.MeterReading) error {
	_, _, err := Reconcile(db, reading.RoomID, reading.ServiceID,
		reading.BillingMonth, reading.BillingYear, reading.Reading)
	if err != nil {
		return err
	}

	if err := database.InsertMeterReading(db, reading); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateReading
		}
		return err
	}
	return nil
}

// EditReading corrects a not-yet-billed reading. The new value goes through
// the same regression check as a fresh reading, so a bad correction fails
// here instead of at invoice time.
func EditReading(db *sql.DB, readingID string, value float64) (*models.MeterReading, error) {
	reading, err := database.GetMeterReadingByID(db, readingID)
	if err != nil {
		return nil, err
	}
	if reading.IsBilled {
		return nil, database.ErrReadingBilled
	}

	_, _, err = Reconcile(db, reading.RoomID, reading.ServiceID,
		reading.BillingMonth, reading.BillingYear, value)
	if err != nil {
		return nil, err
	}

	reading.Reading = value
	if err := database.UpdateMeterReading(db, reading); err != nil {
		return nil, err
	}
	return reading, nil
}
