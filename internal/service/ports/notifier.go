package ports

import (
	"context"

	"github.com/3lokai/Booking-system/internal/domain"
)

type SlotNotifier interface {
	NotifyBookingCreated(ctx context.Context, slot *domain.Slot)
	NotifyUpcomingSession(ctx context.Context, slot *domain.Slot)
}
