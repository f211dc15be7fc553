package billing

import (
	"time"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
)

// ActiveOccupants counts the tenancies whose [move_in, move_out) interval
// overlaps the billing period [periodStart, periodEnd). A tenant who moved
// in or out mid-period still counts. Zero means the room was vacant for the
// period, which is a state, not an error.
func ActiveOccupants(q database.Querier, roomID string, periodStart, periodEnd time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM room_tenancies
			  WHERE room_id = $1
			  AND move_in_date < $3
			  AND (move_out_date IS NULL OR move_out_date > $2)`

	var count int
	err := q.QueryRow(query, roomID, periodStart, periodEnd).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// RepresentativeTenant returns the tenant whose name is on the lease: the
// earliest-moved-in tenancy still open, ties broken by earliest creation.
// Returns sql.ErrNoRows through when the room is vacant.
func RepresentativeTenant(q database.Querier, roomID string) (string, error) {
	query := `SELECT tenant_id FROM room_tenancies
			  WHERE room_id = $1 AND move_out_date IS NULL
			  ORDER BY move_in_date, created_at
			  LIMIT 1`

	var tenantID string
	err := q.QueryRow(query, roomID).Scan(&tenantID)
	if err != nil {
		return "", err
	}
	return tenantID, nil
}
