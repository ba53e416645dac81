package dto

// CreateBookingRequest carries the booking form. Field checks live in the
// booking service so the user sees them in a fixed order.
type CreateBookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountName string `json:"account_name"`
	SlotID      string `json:"slot_id"`
}
