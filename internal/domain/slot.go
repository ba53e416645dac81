package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// SlotDuration is the length of every bookable review window.
const SlotDuration = time.Hour

type Slot struct {
	ID          string      `json:"id"`
	TimeSlot    time.Time   `json:"time_slot"`
	IsBooked    bool        `json:"is_booked"`
	BookerName  null.String `json:"booker_name"`
	BookerEmail null.String `json:"booker_email"`
	AccountName null.String `json:"account_name"`
	CreatedAt   time.Time   `json:"created_at"`
	RemindedAt  null.Time   `json:"reminded_at"`
}

// End returns the end of the one-hour window.
func (s *Slot) End() time.Time {
	return s.TimeSlot.Add(SlotDuration)
}

// SlotGroup is one calendar day of slots, in display order.
type SlotGroup struct {
	Date  string  `json:"date"`
	Slots []*Slot `json:"slots"`
}
