package ports

import (
	"context"
	"time"

	"github.com/3lokai/Booking-system/internal/domain"
)

type SlotRepo interface {
	List(ctx context.Context) ([]*domain.Slot, error)
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	CreateBatch(ctx context.Context, slots []*domain.Slot) error
	FindBookedByIdentity(ctx context.Context, name, email, account string) (*domain.Slot, error)
	Book(ctx context.Context, slotID string, in domain.BookingInput) (*domain.Slot, error)
	ClaimDueReminders(ctx context.Context, within time.Duration) ([]*domain.Slot, error)
}
