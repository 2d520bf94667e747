package booking

import (
	"time"

	"societyhub/internal/repository"
)

// Bookable window, society-local time.
const (
	windowOpenHour  = 8
	windowCloseHour = 22
)

// generateSlots lists the free "HH:MM" start times for one day. Slots
// run every stepMinutes from 08:00 up to (not including) 22:00, and a
// slot is excluded when any booked interval covers its start time. Both
// the slot grid and the booked intervals are in society-local time.
func generateSlots(day time.Time, stepMinutes int, booked []repository.BookedSlot) []string {
	if stepMinutes <= 0 {
		return nil
	}

	type window struct {
		start string
		end   string
	}
	occupied := make([]window, 0, len(booked))
	for _, b := range booked {
		occupied = append(occupied, window{
			start: b.StartTime.In(istZone).Format("15:04"),
			end:   b.EndTime.In(istZone).Format("15:04"),
		})
	}

	open := time.Date(day.Year(), day.Month(), day.Day(), windowOpenHour, 0, 0, 0, istZone)
	close := time.Date(day.Year(), day.Month(), day.Day(), windowCloseHour, 0, 0, 0, istZone)

	step := time.Duration(stepMinutes) * time.Minute

	var free []string
	// A slot is offered only when the whole interval fits before close.
	for t := open; !t.Add(step).After(close); t = t.Add(step) {
		hhmm := t.Format("15:04")
		taken := false
		for _, w := range occupied {
			// "HH:MM" compares correctly as a string within one day.
			if w.start <= hhmm && hhmm < w.end {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, hhmm)
		}
	}
	return free
}
