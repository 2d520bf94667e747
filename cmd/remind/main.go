package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"societyhub/internal/database"
	"societyhub/internal/jobs"
	"societyhub/internal/repository"
)

// One-shot runner for the scheduled jobs, handy for crontab-driven
// deployments that do not keep the API process running.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "societyhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	runner := jobs.NewRunner(
		repository.NewBillRepository(db),
		repository.NewBookingRepository(db),
		repository.NewNotificationRepository(db),
		nil,
	)

	ctx := context.Background()
	if err := runner.RemindDueBills(ctx); err != nil {
		log.Fatalf("bill reminders: %v", err)
	}
	if err := runner.CompleteFinishedBookings(ctx); err != nil {
		log.Fatalf("booking completion: %v", err)
	}
	log.Println("Done")
}
