package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger on the 5th of each month at 8:00 AM
			if now.Day() == 5 && now.Hour() == 8 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [monthly reminders]...")

				if err := SendUnpaidInvoiceReminders(db); err != nil {
					log.Printf("Error sending unpaid invoice reminders: %v", err)
				}
			}
		}
	}()
}
