package billing

import (
	"time"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/shopspring/decimal"
)

// ResolveUnitCost finds the tariff whose [effective_from, effective_to)
// window covers onDate for the (hostel, service) pair and returns its unit
// cost and unit type. An absent effective_to means open-ended.
//
// Returns ErrTariffNotFound when no window covers the date and
// ErrAmbiguousTariff when more than one does (defensive check; write-time
// overlap enforcement should prevent it).
func ResolveUnitCost(q database.Querier, hostelID, serviceID string, onDate time.Time) (decimal.Decimal, string, error) {
	query := `SELECT unit_cost, COALESCE(unit, '')
			  FROM service_costs
			  WHERE hostel_id = $1 AND service_id = $2
			  AND effective_from <= $3
			  AND (effective_to IS NULL OR effective_to > $3)`

	rows, err := q.Query(query, hostelID, serviceID, onDate)
	if err != nil {
		return decimal.Zero, "", err
	}
	defer rows.Close()

	var unitCost decimal.Decimal
	var unit string
	matches := 0
	for rows.Next() {
		if matches == 0 {
			if err := rows.Scan(&unitCost, &unit); err != nil {
				return decimal.Zero, "", err
			}
		}
		matches++
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, "", err
	}

	switch {
	case matches == 0:
		return decimal.Zero, "", ErrTariffNotFound
	case matches > 1:
		return decimal.Zero, "", ErrAmbiguousTariff
	}
	return unitCost, unit, nil
}
