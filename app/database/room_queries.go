package database

import (
	"database/sql"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
)

func CreateRoom(db *sql.DB, room *models.Room) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO rooms (hostel_id, name, floor, area, max_occupants, monthly_rent)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query,
		room.HostelID, room.Name, room.Floor, room.Area, room.MaxOccupants, room.MonthlyRent,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return err
	}

	// keep the hostel's room counter in step
	_, err = tx.Exec(`UPDATE hostels SET number_rooms = number_rooms + 1, updated_at = NOW() WHERE id = $1`,
		room.HostelID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetRoomByID loads a room. Takes a Querier so the invoice composer can read
// the rent price inside its transaction.
func GetRoomByID(q Querier, roomID string) (*models.Room, error) {
	room := &models.Room{}
	query := `SELECT id, hostel_id, name, floor, area, max_occupants, monthly_rent, is_available,
			  created_at, updated_at
			  FROM rooms WHERE id = $1 AND deleted_at IS NULL`

	err := q.QueryRow(query, roomID).Scan(
		&room.ID, &room.HostelID, &room.Name, &room.Floor, &room.Area,
		&room.MaxOccupants, &room.MonthlyRent, &room.IsAvailable,
		&room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func GetRoomsByHostel(db *sql.DB, hostelID string) ([]*models.Room, error) {
	query := `SELECT id, hostel_id, name, floor, area, max_occupants, monthly_rent, is_available,
			  created_at, updated_at
			  FROM rooms WHERE hostel_id = $1 AND deleted_at IS NULL
			  ORDER BY name`

	rows, err := db.Query(query, hostelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room := &models.Room{}
		err := rows.Scan(
			&room.ID, &room.HostelID, &room.Name, &room.Floor, &room.Area,
			&room.MaxOccupants, &room.MonthlyRent, &room.IsAvailable,
			&room.CreatedAt, &room.UpdatedAt,
		)
		if err != nil {
			continue
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func UpdateRoom(db *sql.DB, room *models.Room) error {
	query := `UPDATE rooms SET name = $1, floor = $2, area = $3, max_occupants = $4,
			  monthly_rent = $5, is_available = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		room.Name, room.Floor, room.Area, room.MaxOccupants,
		room.MonthlyRent, room.IsAvailable, room.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteRoom(db *sql.DB, roomID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var hostelID string
	err = tx.QueryRow(`UPDATE rooms SET deleted_at = NOW()
					   WHERE id = $1 AND deleted_at IS NULL
					   RETURNING hostel_id`, roomID).Scan(&hostelID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE hostels SET number_rooms = number_rooms - 1, updated_at = NOW() WHERE id = $1`,
		hostelID)
	if err != nil {
		return err
	}

	return tx.Commit()
}
