package database

import (
	"database/sql"
	"errors"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/lib/pq"
)

// ErrReadingBilled is returned when editing a reading an invoice has already
// consumed.
var ErrReadingBilled = errors.New("meter reading already consumed by an invoice")

// InsertMeterReading records a reading for one billing period. The unique
// constraint on (room, service, month, year) rejects duplicates.
func InsertMeterReading(db *sql.DB, reading *models.MeterReading) error {
	query := `INSERT INTO meter_readings (room_id, service_id, reading, billing_month, billing_year)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		reading.RoomID, reading.ServiceID, reading.Reading,
		reading.BillingMonth, reading.BillingYear,
	).Scan(&reading.ID, &reading.CreatedAt, &reading.UpdatedAt)
	return err
}

// UpdateMeterReading edits a not-yet-billed reading.
func UpdateMeterReading(db *sql.DB, reading *models.MeterReading) error {
	var isBilled bool
	err := db.QueryRow(`SELECT is_billed FROM meter_readings WHERE id = $1 AND deleted_at IS NULL`,
		reading.ID).Scan(&isBilled)
	if err != nil {
		return err
	}
	if isBilled {
		return ErrReadingBilled
	}

	query := `UPDATE meter_readings SET reading = $1, updated_at = NOW()
			  WHERE id = $2 AND is_billed = false AND deleted_at IS NULL`
	result, err := db.Exec(query, reading.Reading, reading.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetMeterReadingByID loads a single reading row.
func GetMeterReadingByID(q Querier, readingID string) (*models.MeterReading, error) {
	reading := &models.MeterReading{}
	query := `SELECT id, room_id, service_id, reading, billing_month, billing_year, is_billed,
			  created_at, updated_at
			  FROM meter_readings
			  WHERE id = $1 AND deleted_at IS NULL`

	err := q.QueryRow(query, readingID).Scan(
		&reading.ID, &reading.RoomID, &reading.ServiceID, &reading.Reading,
		&reading.BillingMonth, &reading.BillingYear, &reading.IsBilled,
		&reading.CreatedAt, &reading.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reading, nil
}

// GetMeterReading loads the reading for one (room, service, period). Takes a
// Querier so the meter reconciler can run inside the invoice transaction.
func GetMeterReading(q Querier, roomID, serviceID string, month, year int) (*models.MeterReading, error) {
	reading := &models.MeterReading{}
	query := `SELECT id, room_id, service_id, reading, billing_month, billing_year, is_billed,
			  created_at, updated_at
			  FROM meter_readings
			  WHERE room_id = $1 AND service_id = $2 AND billing_month = $3 AND billing_year = $4
			  AND deleted_at IS NULL`

	err := q.QueryRow(query, roomID, serviceID, month, year).Scan(
		&reading.ID, &reading.RoomID, &reading.ServiceID, &reading.Reading,
		&reading.BillingMonth, &reading.BillingYear, &reading.IsBilled,
		&reading.CreatedAt, &reading.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reading, nil
}

// GetPreviousMeterReading returns the most recent reading for (room, service)
// strictly before (year, month) in calendar order, or sql.ErrNoRows.
func GetPreviousMeterReading(q Querier, roomID, serviceID string, month, year int) (*models.MeterReading, error) {
	reading := &models.MeterReading{}
	query := `SELECT id, room_id, service_id, reading, billing_month, billing_year, is_billed,
			  created_at, updated_at
			  FROM meter_readings
			  WHERE room_id = $1 AND service_id = $2 AND deleted_at IS NULL
			  AND (billing_year < $4 OR (billing_year = $4 AND billing_month < $3))
			  ORDER BY billing_year DESC, billing_month DESC
			  LIMIT 1`

	err := q.QueryRow(query, roomID, serviceID, month, year).Scan(
		&reading.ID, &reading.RoomID, &reading.ServiceID, &reading.Reading,
		&reading.BillingMonth, &reading.BillingYear, &reading.IsBilled,
		&reading.CreatedAt, &reading.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reading, nil
}

// MarkReadingBilled freezes a reading once an invoice has consumed it.
func MarkReadingBilled(q Querier, readingID string) error {
	_, err := q.Exec(`UPDATE meter_readings SET is_billed = true, updated_at = NOW() WHERE id = $1`,
		readingID)
	return err
}

func GetReadingsForRoom(db *sql.DB, roomID string) ([]*models.MeterReading, error) {
	query := `SELECT mr.id, mr.room_id, mr.service_id, mr.reading, mr.billing_month, mr.billing_year,
			  mr.is_billed, mr.created_at, mr.updated_at, s.name
			  FROM meter_readings mr
			  JOIN services s ON s.id = mr.service_id
			  WHERE mr.room_id = $1 AND mr.deleted_at IS NULL
			  ORDER BY mr.billing_year DESC, mr.billing_month DESC, s.name`

	rows, err := db.Query(query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []*models.MeterReading
	for rows.Next() {
		reading := &models.MeterReading{Service: &models.Service{}}
		err := rows.Scan(
			&reading.ID, &reading.RoomID, &reading.ServiceID, &reading.Reading,
			&reading.BillingMonth, &reading.BillingYear, &reading.IsBilled,
			&reading.CreatedAt, &reading.UpdatedAt, &reading.Service.Name,
		)
		if err != nil {
			continue
		}
		reading.Service.ID = reading.ServiceID
		readings = append(readings, reading)
	}
	return readings, nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (pq error code 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
