package billing

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/shopspring/decimal"
)

// GenerateMonthlyInvoice composes and persists the invoice for one room and
// billing period. Every read and write runs inside a single transaction, so
// the invoice and its line items land as one atomic unit or not at all.
//
// Unit costs are resolved at the first day of the billing period and
// snapshotted into the line items; later tariff changes never touch a
// generated invoice. Rent is billed as a flat full-month amount.
func GenerateMonthlyInvoice(db *sql.DB, roomID string, month, year int) (*models.Invoice, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid billing month: %d", month)
	}
	if year < 2000 {
		return nil, fmt.Errorf("invalid billing year: %d", year)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	exists, err := database.InvoiceExists(tx, roomID, month, year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateInvoice
	}

	room, err := database.GetRoomByID(tx, roomID)
	if err != nil {
		return nil, err
	}

	services, err := database.GetServicesForHostel(tx, room.HostelID)
	if err != nil {
		return nil, err
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	invoice := &models.Invoice{
		RoomID:       roomID,
		BillingMonth: month,
		BillingYear:  year,
	}
	var billedReadings []string

	for _, service := range services {
		unitCost, unit, err := ResolveUnitCost(tx, room.HostelID, service.ID, periodStart)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", service.Name, err)
		}

		detail := &models.InvoiceDetail{
			ServiceID:   &service.ID,
			Description: service.Name,
			UnitCost:    unitCost,
			BillingDate: periodStart,
		}

		switch service.ChargingMethod {
		case models.ChargePerUnit:
			current, err := database.GetMeterReading(tx, roomID, service.ID, month, year)
			if err == sql.ErrNoRows {
				return nil, fmt.Errorf("%s: %w", service.Name, ErrMissingReading)
			}
			if err != nil {
				return nil, err
			}
			previous, consumed, err := Reconcile(tx, roomID, service.ID, month, year, current.Reading)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", service.Name, err)
			}
			detail.PreviousReading = previous
			detail.CurrentReading = current.Reading
			detail.ActualCost = unitCost.Mul(decimal.NewFromFloat(consumed))
			if unit != "" {
				detail.Description = fmt.Sprintf("%s (%.0f %s)", service.Name, consumed, unit)
			}
			billedReadings = append(billedReadings, current.ID)

		case models.ChargePerPerson:
			occupants, err := ActiveOccupants(tx, roomID, periodStart, periodEnd)
			if err != nil {
				return nil, err
			}
			detail.ActualCost = unitCost.Mul(decimal.NewFromInt(int64(occupants)))
			detail.Description = fmt.Sprintf("%s (%d person)", service.Name, occupants)

		default: // flat
			detail.ActualCost = unitCost
		}

		invoice.Details = append(invoice.Details, detail)
	}

	// rent line, whole-month
	rentDetail := &models.InvoiceDetail{
		Description: "Room rent",
		UnitCost:    room.MonthlyRent,
		ActualCost:  room.MonthlyRent,
		IsRentRoom:  true,
		BillingDate: periodStart,
	}
	invoice.Details = append(invoice.Details, rentDetail)

	invoice.TotalAmount = invoice.SumDetails()

	if err := database.InsertInvoice(tx, invoice); err != nil {
		// a concurrent generation attempt for the same period lost the
		// race to the unique index
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateInvoice
		}
		return nil, err
	}

	for _, detail := range invoice.Details {
		detail.InvoiceID = invoice.ID
		if err := database.InsertInvoiceDetail(tx, detail); err != nil {
			return nil, err
		}
	}

	for _, readingID := range billedReadings {
		if err := database.MarkReadingBilled(tx, readingID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return invoice, nil
}
