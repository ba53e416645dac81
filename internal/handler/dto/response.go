package dto

import (
	"time"

	"github.com/3lokai/Booking-system/internal/domain"
)

type SlotResponse struct {
	ID          string  `json:"id"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	IsBooked    bool    `json:"is_booked"`
	BookerName  *string `json:"booker_name,omitempty"`
	AccountName *string `json:"account_name,omitempty"`
}

type SlotGroupResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse tags which identity field already holds a booking, so the
// page can render the right escalation message without parsing strings.
type ConflictResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
	Value string `json:"value"`
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		StartsAt:    s.TimeSlot.Format(time.RFC3339),
		EndsAt:      s.End().Format(time.RFC3339),
		IsBooked:    s.IsBooked,
		BookerName:  s.BookerName.Ptr(),
		AccountName: s.AccountName.Ptr(),
	}
}

func ToSlotGroupResponses(groups []domain.SlotGroup) []SlotGroupResponse {
	res := make([]SlotGroupResponse, 0, len(groups))
	for _, g := range groups {
		slots := make([]SlotResponse, 0, len(g.Slots))
		for _, s := range g.Slots {
			slots = append(slots, ToSlotResponse(s))
		}
		res = append(res, SlotGroupResponse{Date: g.Date, Slots: slots})
	}

	return res
}
