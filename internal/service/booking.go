package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/3lokai/Booking-system/internal/domain"
	"github.com/3lokai/Booking-system/internal/service/ports"
)

type BookingService struct {
	repo         ports.SlotRepo
	notifier     ports.SlotNotifier
	emailDomain  string
	remindWindow time.Duration
	logger       logger.Logger
}

func NewBookingService(
	repo ports.SlotRepo,
	notifier ports.SlotNotifier,
	emailDomain string,
	remindWindow time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:         repo,
		notifier:     notifier,
		emailDomain:  emailDomain,
		remindWindow: remindWindow,
		logger:       logger,
	}
}

// Book runs one booking attempt end to end: validate the form, probe for an
// existing booking by the same identity, then commit conditionally.
func (s *BookingService) Book(ctx context.Context, in domain.BookingInput) (*domain.Slot, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	// Невалидный UUID трактуем как несуществующий слот, а не как ошибку БД.
	if _, err := uuid.Parse(in.SlotID); err != nil {
		return nil, domain.ErrSlotNotFound
	}

	existing, err := s.repo.FindBookedByIdentity(ctx, in.Name, in.Email, in.AccountName)
	if err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, fmt.Errorf("conflict check: %w", err)
	}
	if existing != nil {
		return nil, tagConflict(existing, in)
	}

	slot, err := s.repo.Book(ctx, in.SlotID, in)
	if err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	s.logger.Info("slot booked",
		logger.String("slot_id", slot.ID),
		logger.String("account", in.AccountName),
		logger.String("starts_at", slot.TimeSlot.Format(time.RFC3339)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), slot)

	return slot, nil
}

// Check order matters for the message shown to the user, not correctness.
func (s *BookingService) validate(in domain.BookingInput) error {
	if !strings.HasSuffix(in.Email, s.emailDomain) {
		return fmt.Errorf("%w: please use your %s email address", domain.ErrValidation, s.emailDomain)
	}
	if in.SlotID == "" {
		return fmt.Errorf("%w: please select a time slot", domain.ErrValidation)
	}
	if in.Name == "" || in.Email == "" || in.AccountName == "" {
		return fmt.Errorf("%w: please fill in all fields", domain.ErrValidation)
	}
	if !strings.Contains(in.Email, "@") {
		return fmt.Errorf("%w: please enter a valid email address", domain.ErrValidation)
	}

	return nil
}

// tagConflict names the field that collided, checked against the first
// conflicting record in fixed priority: email, then account, then name.
func tagConflict(existing *domain.Slot, in domain.BookingInput) error {
	switch {
	case existing.BookerEmail.String == in.Email:
		return &domain.ConflictError{Field: domain.ConflictEmail, Value: in.Email}
	case existing.AccountName.String == in.AccountName:
		return &domain.ConflictError{Field: domain.ConflictAccount, Value: in.AccountName}
	default:
		return &domain.ConflictError{Field: domain.ConflictName, Value: in.Name}
	}
}

// SendDueReminders claims sessions starting within the configured window and
// notifies organizers about each, exactly once per slot.
func (s *BookingService) SendDueReminders(ctx context.Context) ([]*domain.Slot, error) {
	due, err := s.repo.ClaimDueReminders(ctx, s.remindWindow)
	if err != nil {
		return nil, fmt.Errorf("claim due reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("session reminders due",
			logger.Int("count", len(due)),
		)

		go s.notifyUpcoming(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *BookingService) notifyUpcoming(ctx context.Context, slots []*domain.Slot) {
	for _, slot := range slots {
		s.notifier.NotifyUpcomingSession(ctx, slot)
	}
}
