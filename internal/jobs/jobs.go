package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"societyhub/internal/domain"
	"societyhub/internal/events"
)

type BillRepo interface {
	GetDueWithin(ctx context.Context, now time.Time, window time.Duration) ([]domain.Bill, error)
}

type BookingRepo interface {
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type EventPublisher interface {
	SendToUser(userID int64, event string, payload any) bool
}

// Runner owns the background schedule: a daily bill reminder and an
// hourly sweep that completes finished bookings.
type Runner struct {
	bills    BillRepo
	bookings BookingRepo
	notifs   NotificationRepo
	events   EventPublisher
	cron     *cron.Cron
}

func NewRunner(bills BillRepo, bookings BookingRepo, notifs NotificationRepo, eventPub EventPublisher) *Runner {
	return &Runner{
		bills:    bills,
		bookings: bookings,
		notifs:   notifs,
		events:   eventPub,
		cron:     cron.New(),
	}
}

// Start registers the schedule and launches the cron loop. Reminders go
// out at 09:00 server time; the completion sweep runs hourly.
func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc("0 9 * * *", func() {
		if err := r.RemindDueBills(context.Background()); err != nil {
			log.Printf("bill reminder job: %v", err)
		}
	}); err != nil {
		return err
	}
	if _, err := r.cron.AddFunc("@hourly", func() {
		if err := r.CompleteFinishedBookings(context.Background()); err != nil {
			log.Printf("booking completion job: %v", err)
		}
	}); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// RemindDueBills notifies each resident with an unpaid bill due within
// the next three days.
func (r *Runner) RemindDueBills(ctx context.Context) error {
	now := time.Now().UTC()
	due, err := r.bills.GetDueWithin(ctx, now, 3*24*time.Hour)
	if err != nil {
		return err
	}

	for _, b := range due {
		n := &domain.Notification{
			UserID:  b.UserID,
			Message: fmt.Sprintf("Reminder: %s (%.2f) is due on %s", b.Description, b.Amount, b.DueDate.Format("2006-01-02")),
			Type:    domain.NotifBill,
			BillID:  &b.ID,
		}
		if err := r.notifs.Create(ctx, n); err != nil {
			log.Printf("bill reminder for user %d: %v", b.UserID, err)
			continue
		}
		if r.events != nil {
			r.events.SendToUser(b.UserID, events.EventNewNotification, n.Message)
		}
	}
	return nil
}

// CompleteFinishedBookings moves approved bookings whose end time has
// passed to completed.
func (r *Runner) CompleteFinishedBookings(ctx context.Context) error {
	n, err := r.bookings.CompleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("completed %d finished bookings", n)
	}
	return nil
}
