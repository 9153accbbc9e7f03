package services

import (
	"database/sql"
	"log"
	"time"

	"greenview-homes/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB, mailer Mailer) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 7:00 AM
			if now.Hour() == 7 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [07:00]...")

				if err := SendDelayedDuesReminders(db, mailer, now); err != nil {
					log.Printf("Error sending delayed dues reminders: %v", err)
				}
			}
		}
	}()
}

// SendDelayedDuesReminders emails every account holder with overdue
// months a summary reminder, one email per user-year group. The settings
// row is read once and threaded through so every email in the batch shows
// the same payment instructions.
func SendDelayedDuesReminders(db *sql.DB, mailer Mailer, now time.Time) error {
	settings, err := database.GetSettings(db)
	if err != nil {
		return err
	}

	groups, err := database.GetDelayedObligationsGrouped(db, now)
	if err != nil {
		return err
	}

	for _, group := range groups {
		if err := mailer.Send(DelayedDuesEmail(group, settings)); err != nil {
			log.Printf("Failed to send reminder to %s: %v", group.UserEmail, err)
		}
	}

	log.Printf("Delayed dues reminders sent to %d account holders", len(groups))
	return nil
}
