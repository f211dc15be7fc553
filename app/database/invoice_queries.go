package database

import (
	"database/sql"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/shopspring/decimal"
)

// InvoiceExists reports whether an invoice already exists for the billing
// period. Takes a Querier so the composer can check inside its transaction.
func InvoiceExists(q Querier, roomID string, month, year int) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM invoices
			  WHERE room_id = $1 AND billing_month = $2 AND billing_year = $3`
	if err := q.QueryRow(query, roomID, month, year).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertInvoice writes the invoice header inside the composer's transaction.
func InsertInvoice(tx *sql.Tx, invoice *models.Invoice) error {
	query := `INSERT INTO invoices (room_id, billing_month, billing_year, total_amount, amount_paid, is_paid)
			  VALUES ($1, $2, $3, $4, 0, false)
			  RETURNING id, created_at, updated_at`
	return tx.QueryRow(query,
		invoice.RoomID, invoice.BillingMonth, invoice.BillingYear, invoice.TotalAmount,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
}

// InsertInvoiceDetail writes one line item inside the composer's transaction.
func InsertInvoiceDetail(tx *sql.Tx, detail *models.InvoiceDetail) error {
	query := `INSERT INTO invoice_details
			  (invoice_id, service_id, description, unit_cost, actual_cost, previous_reading, current_reading, is_rent_room, billing_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	return tx.QueryRow(query,
		detail.InvoiceID, detail.ServiceID, detail.Description, detail.UnitCost,
		detail.ActualCost, detail.PreviousReading, detail.CurrentReading,
		detail.IsRentRoom, detail.BillingDate,
	).Scan(&detail.ID)
}

func GetInvoiceByID(db *sql.DB, invoiceID string) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	var method sql.NullString
	query := `SELECT id, room_id, billing_month, billing_year, total_amount, amount_paid,
			  is_paid, transfer_method, created_at, updated_at
			  FROM invoices WHERE id = $1`

	err := db.QueryRow(query, invoiceID).Scan(
		&invoice.ID, &invoice.RoomID, &invoice.BillingMonth, &invoice.BillingYear,
		&invoice.TotalAmount, &invoice.AmountPaid, &invoice.IsPaid, &method,
		&invoice.CreatedAt, &invoice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if method.Valid {
		m := models.TransferMethod(method.String)
		invoice.TransferMethod = &m
	}

	details, err := getInvoiceDetails(db, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Details = details
	return invoice, nil
}

func getInvoiceDetails(db *sql.DB, invoiceID string) ([]*models.InvoiceDetail, error) {
	query := `SELECT d.id, d.invoice_id, d.service_id, COALESCE(d.description, ''), d.unit_cost,
			  d.actual_cost, d.previous_reading, d.current_reading, d.is_rent_room, d.billing_date
			  FROM invoice_details d
			  WHERE d.invoice_id = $1
			  ORDER BY d.is_rent_room DESC, d.description`

	rows, err := db.Query(query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*models.InvoiceDetail
	for rows.Next() {
		detail := &models.InvoiceDetail{}
		err := rows.Scan(
			&detail.ID, &detail.InvoiceID, &detail.ServiceID, &detail.Description,
			&detail.UnitCost, &detail.ActualCost, &detail.PreviousReading,
			&detail.CurrentReading, &detail.IsRentRoom, &detail.BillingDate,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}

func GetInvoicesByRoom(db *sql.DB, roomID string) ([]*models.Invoice, error) {
	query := `SELECT id, room_id, billing_month, billing_year, total_amount, amount_paid,
			  is_paid, transfer_method, created_at, updated_at
			  FROM invoices WHERE room_id = $1
			  ORDER BY billing_year DESC, billing_month DESC`
	return scanInvoices(db, query, roomID)
}

func GetInvoicesByHostel(db *sql.DB, hostelID string) ([]*models.Invoice, error) {
	query := `SELECT i.id, i.room_id, i.billing_month, i.billing_year, i.total_amount, i.amount_paid,
			  i.is_paid, i.transfer_method, i.created_at, i.updated_at
			  FROM invoices i
			  JOIN rooms r ON r.id = i.room_id
			  WHERE r.hostel_id = $1
			  ORDER BY i.billing_year DESC, i.billing_month DESC, r.name`
	return scanInvoices(db, query, hostelID)
}

func scanInvoices(db *sql.DB, query string, args ...interface{}) ([]*models.Invoice, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice := &models.Invoice{}
		var method sql.NullString
		err := rows.Scan(
			&invoice.ID, &invoice.RoomID, &invoice.BillingMonth, &invoice.BillingYear,
			&invoice.TotalAmount, &invoice.AmountPaid, &invoice.IsPaid, &method,
			&invoice.CreatedAt, &invoice.UpdatedAt,
		)
		if err != nil {
			continue
		}
		if method.Valid {
			m := models.TransferMethod(method.String)
			invoice.TransferMethod = &m
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

// CollectInvoicePayment applies a payment to an invoice. Only the
// payment-status fields change; line items stay immutable.
func CollectInvoicePayment(db *sql.DB, invoiceID string, amount decimal.Decimal, method models.TransferMethod) (*models.Invoice, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	invoice := &models.Invoice{}
	query := `SELECT id, room_id, billing_month, billing_year, total_amount, amount_paid, is_paid
			  FROM invoices WHERE id = $1 FOR UPDATE`
	err = tx.QueryRow(query, invoiceID).Scan(
		&invoice.ID, &invoice.RoomID, &invoice.BillingMonth, &invoice.BillingYear,
		&invoice.TotalAmount, &invoice.AmountPaid, &invoice.IsPaid,
	)
	if err != nil {
		return nil, err
	}

	invoice.ApplyPayment(amount, method)

	_, err = tx.Exec(`UPDATE invoices SET amount_paid = $1, is_paid = $2, transfer_method = $3, updated_at = NOW()
					  WHERE id = $4`,
		invoice.AmountPaid, invoice.IsPaid, string(method), invoiceID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return invoice, nil
}
