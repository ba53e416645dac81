package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/3lokai/Booking-system/internal/domain"
)

type sessionReminder interface {
	SendDueReminders(ctx context.Context) ([]*domain.Slot, error)
}

// Scheduler periodically pushes reminders for booked sessions that are about
// to start.
type Scheduler struct {
	bookingService sessionReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService sessionReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	due, err := s.bookingService.SendDueReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send session reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, slot := range due {
		s.logger.Info("session reminder sent",
			logger.String("slot_id", slot.ID),
			logger.String("account", slot.AccountName.ValueOrZero()),
			logger.String("starts_at", slot.TimeSlot.Format(time.RFC3339)),
		)
	}
}
