package database

import (
	"database/sql"
	"errors"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
)

// ErrTariffOverlap is returned when a new tariff's effective window collides
// with an existing one for the same (hostel, service).
var ErrTariffOverlap = errors.New("tariff window overlaps an existing tariff")

func GetAllServices(db *sql.DB) ([]*models.Service, error) {
	query := `SELECT id, name, charging_method, created_at, updated_at
			  FROM services WHERE deleted_at IS NULL ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		service := &models.Service{}
		var method string
		if err := rows.Scan(&service.ID, &service.Name, &method, &service.CreatedAt, &service.UpdatedAt); err != nil {
			continue
		}
		service.ChargingMethod = models.ChargingMethod(method)
		services = append(services, service)
	}
	return services, nil
}

// GetServiceByID loads one service. Takes a Querier for use inside the
// invoice-generation transaction.
func GetServiceByID(q Querier, serviceID string) (*models.Service, error) {
	service := &models.Service{}
	var method string
	query := `SELECT id, name, charging_method, created_at, updated_at
			  FROM services WHERE id = $1 AND deleted_at IS NULL`

	err := q.QueryRow(query, serviceID).Scan(
		&service.ID, &service.Name, &method, &service.CreatedAt, &service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	service.ChargingMethod = models.ChargingMethod(method)
	return service, nil
}

func CreateService(db *sql.DB, service *models.Service) error {
	query := `INSERT INTO services (name, charging_method) VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, service.Name, string(service.ChargingMethod)).Scan(
		&service.ID, &service.CreatedAt, &service.UpdatedAt,
	)
}

func UpdateService(db *sql.DB, service *models.Service) error {
	query := `UPDATE services SET name = $1, charging_method = $2, updated_at = NOW()
			  WHERE id = $3 AND deleted_at IS NULL`
	result, err := db.Exec(query, service.Name, string(service.ChargingMethod), service.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteService(db *sql.DB, serviceID string) error {
	query := `UPDATE services SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, serviceID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateServiceCost inserts a new tariff. An open-ended prior tariff for the
// same (hostel, service) is closed at the new effective_from; any other
// window collision is rejected with ErrTariffOverlap. Tariff rows are never
// updated in place, so historical invoices keep their snapshots.
func CreateServiceCost(db *sql.DB, cost *models.ServiceCost) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// close the currently open tariff, if any, at the new start date
	_, err = tx.Exec(`UPDATE service_costs SET effective_to = $1
					  WHERE hostel_id = $2 AND service_id = $3
					  AND effective_to IS NULL AND effective_from < $1`,
		cost.EffectiveFrom, cost.HostelID, cost.ServiceID)
	if err != nil {
		return err
	}

	// reject any remaining overlap: [from, to) windows collide when
	// existing.from < new.to AND (existing.to IS NULL OR existing.to > new.from)
	var overlaps int
	overlapQuery := `SELECT COUNT(*) FROM service_costs
					 WHERE hostel_id = $1 AND service_id = $2
					 AND effective_from < COALESCE($4, 'infinity'::date)
					 AND (effective_to IS NULL OR effective_to > $3)`
	err = tx.QueryRow(overlapQuery, cost.HostelID, cost.ServiceID,
		cost.EffectiveFrom, cost.EffectiveTo).Scan(&overlaps)
	if err != nil {
		return err
	}
	if overlaps > 0 {
		return ErrTariffOverlap
	}

	query := `INSERT INTO service_costs (hostel_id, service_id, unit_cost, unit, effective_from, effective_to)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	err = tx.QueryRow(query,
		cost.HostelID, cost.ServiceID, cost.UnitCost, cost.Unit,
		cost.EffectiveFrom, cost.EffectiveTo,
	).Scan(&cost.ID, &cost.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func GetServiceCosts(db *sql.DB, hostelID string) ([]*models.ServiceCost, error) {
	query := `SELECT sc.id, sc.hostel_id, sc.service_id, sc.unit_cost, COALESCE(sc.unit, ''),
			  sc.effective_from, sc.effective_to, sc.created_at, s.name
			  FROM service_costs sc
			  JOIN services s ON s.id = sc.service_id
			  WHERE sc.hostel_id = $1
			  ORDER BY s.name, sc.effective_from DESC`

	rows, err := db.Query(query, hostelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var costs []*models.ServiceCost
	for rows.Next() {
		cost := &models.ServiceCost{Service: &models.Service{}}
		err := rows.Scan(
			&cost.ID, &cost.HostelID, &cost.ServiceID, &cost.UnitCost, &cost.Unit,
			&cost.EffectiveFrom, &cost.EffectiveTo, &cost.CreatedAt,
			&cost.Service.Name,
		)
		if err != nil {
			continue
		}
		cost.Service.ID = cost.ServiceID
		costs = append(costs, cost)
	}
	return costs, nil
}
