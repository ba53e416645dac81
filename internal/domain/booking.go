package domain

// BookingInput is the booking form as submitted: who is booking, for which
// account, and which slot was selected.
type BookingInput struct {
	Name        string
	Email       string
	AccountName string
	SlotID      string
}
