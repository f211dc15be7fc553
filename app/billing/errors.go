// Package billing implements the monthly invoice workflow: tariff
// resolution, meter reconciliation, occupancy accounting and invoice
// composition. All reads and writes go through an explicit database handle
// so the transactional boundary is visible in every signature.
package billing

import "errors"

var (
	// ErrTariffNotFound means no tariff window covers the billing date for
	// the (hostel, service) pair.
	ErrTariffNotFound = errors.New("no tariff configured for this service at this hostel on the billing date")

	// ErrAmbiguousTariff means the stored tariff data violates the
	// non-overlap invariant. Write-time checks should make this impossible.
	ErrAmbiguousTariff = errors.New("multiple tariff windows cover the billing date")

	// ErrInvalidReading means the current meter reading is lower than the
	// previous one. Meter replacement has no reset path yet.
	ErrInvalidReading = errors.New("current reading is lower than the previous reading")

	// ErrDuplicateReading means a reading already exists for the
	// (room, service, month, year) and an insert was requested.
	ErrDuplicateReading = errors.New("a reading already exists for this room, service and period")

	// ErrDuplicateInvoice means an invoice already exists for the
	// (room, month, year).
	ErrDuplicateInvoice = errors.New("an invoice already exists for this room and period")

	// ErrMissingReading means a metered service has no reading recorded for
	// the billing period, so the invoice cannot be composed.
	ErrMissingReading = errors.New("no meter reading recorded for this period")
)
