package database

import (
	"database/sql"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
)

func CreateHostel(db *sql.DB, hostel *models.Hostel) error {
	query := `INSERT INTO hostels (landlord_id, name, description, address, ward, city, number_rooms, image_url)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		hostel.LandlordID, hostel.Name, hostel.Description, hostel.Address,
		hostel.Ward, hostel.City, hostel.NumberRooms, hostel.ImageURL,
	).Scan(&hostel.ID, &hostel.CreatedAt, &hostel.UpdatedAt)
}

func GetHostelByID(db *sql.DB, hostelID string) (*models.Hostel, error) {
	hostel := &models.Hostel{}
	query := `SELECT id, landlord_id, name, COALESCE(description, ''), address,
			  COALESCE(ward, ''), COALESCE(city, ''), number_rooms, COALESCE(image_url, ''),
			  created_at, updated_at
			  FROM hostels WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, hostelID).Scan(
		&hostel.ID, &hostel.LandlordID, &hostel.Name, &hostel.Description,
		&hostel.Address, &hostel.Ward, &hostel.City, &hostel.NumberRooms,
		&hostel.ImageURL, &hostel.CreatedAt, &hostel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return hostel, nil
}

func GetHostelsByLandlord(db *sql.DB, landlordID string) ([]*models.Hostel, error) {
	query := `SELECT id, landlord_id, name, COALESCE(description, ''), address,
			  COALESCE(ward, ''), COALESCE(city, ''), number_rooms, COALESCE(image_url, ''),
			  created_at, updated_at
			  FROM hostels WHERE landlord_id = $1 AND deleted_at IS NULL
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hostels []*models.Hostel
	for rows.Next() {
		hostel := &models.Hostel{}
		err := rows.Scan(
			&hostel.ID, &hostel.LandlordID, &hostel.Name, &hostel.Description,
			&hostel.Address, &hostel.Ward, &hostel.City, &hostel.NumberRooms,
			&hostel.ImageURL, &hostel.CreatedAt, &hostel.UpdatedAt,
		)
		if err != nil {
			continue
		}
		hostels = append(hostels, hostel)
	}
	return hostels, nil
}

func UpdateHostel(db *sql.DB, hostel *models.Hostel) error {
	query := `UPDATE hostels SET name = $1, description = $2, address = $3, ward = $4,
			  city = $5, image_url = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		hostel.Name, hostel.Description, hostel.Address, hostel.Ward,
		hostel.City, hostel.ImageURL, hostel.ID,
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

func DeleteHostel(db *sql.DB, hostelID string) error {
	query := `UPDATE hostels SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, hostelID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AttachServiceToHostel enables a service for a hostel so it is picked up by
// the monthly invoice run.
func AttachServiceToHostel(db *sql.DB, hostelID, serviceID string) error {
	query := `INSERT INTO hostel_services (hostel_id, service_id) VALUES ($1, $2)
			  ON CONFLICT DO NOTHING`
	_, err := db.Exec(query, hostelID, serviceID)
	return err
}

func DetachServiceFromHostel(db *sql.DB, hostelID, serviceID string) error {
	query := `DELETE FROM hostel_services WHERE hostel_id = $1 AND service_id = $2`
	_, err := db.Exec(query, hostelID, serviceID)
	return err
}

// GetServicesForHostel returns the services attached to a hostel. Takes a
// Querier so the invoice composer can run it inside its transaction.
func GetServicesForHostel(q Querier, hostelID string) ([]*models.Service, error) {
	query := `SELECT s.id, s.name, s.charging_method, s.created_at, s.updated_at
			  FROM services s
			  JOIN hostel_services hs ON hs.service_id = s.id
			  WHERE hs.hostel_id = $1 AND s.deleted_at IS NULL
			  ORDER BY s.name`

	rows, err := q.Query(query, hostelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		service := &models.Service{}
		var method string
		err := rows.Scan(&service.ID, &service.Name, &method, &service.CreatedAt, &service.UpdatedAt)
		if err != nil {
			return nil, err
		}
		service.ChargingMethod = models.ChargingMethod(method)
		services = append(services, service)
	}
	return services, rows.Err()
}
