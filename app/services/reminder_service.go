package services

import (
	"database/sql"
	"fmt"
	"log"
)

// SendUnpaidInvoiceReminders mails every representative tenant whose room
// has an unpaid invoice. Send failures are logged and skipped; the run
// continues for the remaining rooms.
func SendUnpaidInvoiceReminders(db *sql.DB) error {
	query := `
		SELECT i.id, i.billing_month, i.billing_year, i.total_amount - i.amount_paid,
			   r.name, t.full_name, t.email
		FROM invoices i
		JOIN rooms r ON r.id = i.room_id
		JOIN LATERAL (
			SELECT tn.full_name, tn.email
			FROM room_tenancies rt
			JOIN tenants tn ON tn.id = rt.tenant_id
			WHERE rt.room_id = i.room_id AND rt.move_out_date IS NULL
			ORDER BY rt.move_in_date, rt.created_at
			LIMIT 1
		) t ON true
		WHERE i.is_paid = false AND t.email IS NOT NULL AND t.email <> ''
	`

	rows, err := db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	sent := 0
	for rows.Next() {
		var invoiceID, roomName, tenantName, email string
		var month, year int
		var balance string
		if err := rows.Scan(&invoiceID, &month, &year, &balance, &roomName, &tenantName, &email); err != nil {
			continue
		}

		subject := fmt.Sprintf("Payment reminder: %s invoice %02d/%d", roomName, month, year)
		body := fmt.Sprintf(
			"<p>Dear %s,</p><p>The invoice for room <b>%s</b> (%02d/%d) has an outstanding balance of <b>%s</b>. Please settle it at your earliest convenience.</p>",
			tenantName, roomName, month, year, balance)

		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Reminder email failed for invoice %s: %v", invoiceID, err)
			continue
		}
		sent++
	}

	log.Printf("Sent %d unpaid invoice reminders", sent)
	return rows.Err()
}
