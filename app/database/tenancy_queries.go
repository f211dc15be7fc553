package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
)

func CreateTenant(db *sql.DB, tenant *models.Tenant) error {
	query := `INSERT INTO tenants (full_name, phone, email, identity_card, date_of_birth, permanent_address)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		tenant.FullName, tenant.Phone, tenant.Email, tenant.IdentityCard,
		tenant.DateOfBirth, tenant.PermanentAddr,
	).Scan(&tenant.ID, &tenant.CreatedAt, &tenant.UpdatedAt)
}

func GetTenantByID(db *sql.DB, tenantID string) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	query := `SELECT id, full_name, phone, COALESCE(email, ''), COALESCE(identity_card, ''),
			  date_of_birth, COALESCE(permanent_address, ''), created_at, updated_at
			  FROM tenants WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, tenantID).Scan(
		&tenant.ID, &tenant.FullName, &tenant.Phone, &tenant.Email,
		&tenant.IdentityCard, &tenant.DateOfBirth, &tenant.PermanentAddr,
		&tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

func SearchTenants(db *sql.DB, search string, limit, offset int) ([]*models.Tenant, error) {
	query := `SELECT id, full_name, phone, COALESCE(email, ''), COALESCE(identity_card, ''),
			  date_of_birth, COALESCE(permanent_address, ''), created_at, updated_at
			  FROM tenants
			  WHERE deleted_at IS NULL
			  AND (LOWER(full_name) LIKE $1 OR phone LIKE $1 OR LOWER(COALESCE(email, '')) LIKE $1)
			  ORDER BY full_name LIMIT $2 OFFSET $3`

	pattern := "%" + search + "%"
	rows, err := db.Query(query, pattern, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		tenant := &models.Tenant{}
		err := rows.Scan(
			&tenant.ID, &tenant.FullName, &tenant.Phone, &tenant.Email,
			&tenant.IdentityCard, &tenant.DateOfBirth, &tenant.PermanentAddr,
			&tenant.CreatedAt, &tenant.UpdatedAt,
		)
		if err != nil {
			continue
		}
		tenants = append(tenants, tenant)
	}
	return tenants, nil
}

// MoveTenantIn opens a tenancy interval for the tenant in the room and marks
// the room occupied when it reaches capacity, in one transaction.
func MoveTenantIn(db *sql.DB, tenancy *models.RoomTenancy) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// lock the room row so concurrent move-ins serialize on the
	// capacity check
	var maxOccupants int
	var current int
	err = tx.QueryRow(`SELECT max_occupants FROM rooms WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`,
		tenancy.RoomID).Scan(&maxOccupants)
	if err != nil {
		return err
	}

	err = tx.QueryRow(`SELECT COUNT(*) FROM room_tenancies
					   WHERE room_id = $1 AND move_out_date IS NULL`,
		tenancy.RoomID).Scan(&current)
	if err != nil {
		return err
	}
	if current >= maxOccupants {
		return fmt.Errorf("room is at full capacity (%d occupants)", maxOccupants)
	}

	query := `INSERT INTO room_tenancies (tenant_id, room_id, move_in_date)
			  VALUES ($1, $2, $3) RETURNING id, created_at`
	err = tx.QueryRow(query, tenancy.TenantID, tenancy.RoomID, tenancy.MoveInDate).Scan(
		&tenancy.ID, &tenancy.CreatedAt,
	)
	if err != nil {
		return err
	}

	if current+1 >= maxOccupants {
		_, err = tx.Exec(`UPDATE rooms SET is_available = false, updated_at = NOW() WHERE id = $1`,
			tenancy.RoomID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// MoveTenantOut closes the tenant's open tenancy in the room and frees up
// room availability.
func MoveTenantOut(db *sql.DB, roomID, tenantID string, moveOut time.Time) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE room_tenancies SET move_out_date = $1
							WHERE room_id = $2 AND tenant_id = $3 AND move_out_date IS NULL`,
		moveOut, roomID, tenantID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}

	_, err = tx.Exec(`UPDATE rooms SET is_available = true, updated_at = NOW() WHERE id = $1`, roomID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func GetTenanciesForRoom(db *sql.DB, roomID string) ([]*models.RoomTenancy, error) {
	query := `SELECT rt.id, rt.tenant_id, rt.room_id, rt.move_in_date, rt.move_out_date, rt.created_at,
			  t.full_name, t.phone
			  FROM room_tenancies rt
			  JOIN tenants t ON t.id = rt.tenant_id
			  WHERE rt.room_id = $1
			  ORDER BY rt.move_in_date`

	rows, err := db.Query(query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenancies []*models.RoomTenancy
	for rows.Next() {
		tenancy := &models.RoomTenancy{Tenant: &models.Tenant{}}
		err := rows.Scan(
			&tenancy.ID, &tenancy.TenantID, &tenancy.RoomID,
			&tenancy.MoveInDate, &tenancy.MoveOutDate, &tenancy.CreatedAt,
			&tenancy.Tenant.FullName, &tenancy.Tenant.Phone,
		)
		if err != nil {
			continue
		}
		tenancy.Tenant.ID = tenancy.TenantID
		tenancies = append(tenancies, tenancy)
	}
	return tenancies, nil
}
