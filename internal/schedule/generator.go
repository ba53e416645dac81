// Package schedule owns the fixed Account Plan Review calendar.
package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/3lokai/Booking-system/internal/domain"
)

// Review period: four Wed/Thu pairs in January 2025, five one-hour windows
// per day (a morning block and an early afternoon block, UTC).
var (
	reviewDays = []int{8, 9, 15, 16, 22, 23, 29, 30}
	startHours = []int{8, 9, 10, 13, 14}
)

const (
	reviewYear  = 2025
	reviewMonth = time.January
)

// slotNamespace seeds UUIDv5 slot ids. Ids are derived from the window start
// instant, so regenerating the calendar yields the same keys and seeding can
// rely on upsert semantics instead of a one-shot guard.
var slotNamespace = uuid.MustParse("0c2caf5e-6f4e-4c8f-9d26-3cfb5df7800a")

// SlotID derives the deterministic id of the window starting at ts.
func SlotID(ts time.Time) string {
	return uuid.NewSHA1(slotNamespace, []byte(ts.UTC().Format(time.RFC3339))).String()
}

// Generate produces the full review calendar: 40 unbooked slots ordered by
// start time. now is recorded as created_at only.
func Generate(now time.Time) []*domain.Slot {
	slots := make([]*domain.Slot, 0, len(reviewDays)*len(startHours))
	for _, day := range reviewDays {
		for _, hour := range startHours {
			ts := time.Date(reviewYear, reviewMonth, day, hour, 0, 0, 0, time.UTC)
			slots = append(slots, &domain.Slot{
				ID:        SlotID(ts),
				TimeSlot:  ts,
				CreatedAt: now.UTC(),
			})
		}
	}

	return slots
}
