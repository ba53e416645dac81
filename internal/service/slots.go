package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/3lokai/Booking-system/internal/domain"
	"github.com/3lokai/Booking-system/internal/schedule"
	"github.com/3lokai/Booking-system/internal/service/ports"
)

const groupDateFormat = "Mon, Jan 2"

type SlotService struct {
	repo   ports.SlotRepo
	logger logger.Logger
}

func NewSlotService(repo ports.SlotRepo, logger logger.Logger) *SlotService {
	return &SlotService{
		repo:   repo,
		logger: logger,
	}
}

// EnsureSeeded populates the slot calendar on first run. Generated ids are
// deterministic and the insert upserts, so racing instances converge on the
// same 40 rows.
func (s *SlotService) EnsureSeeded(ctx context.Context) error {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load slots: %w", err)
	}
	if len(slots) > 0 {
		return nil
	}

	generated := schedule.Generate(time.Now())
	if err := s.repo.CreateBatch(ctx, generated); err != nil {
		return fmt.Errorf("seed slots: %w", err)
	}

	// Перечитываем после вставки: под гонкой часть строк могла прийти от соседа.
	slots, err = s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("reload slots: %w", err)
	}

	s.logger.Info("slot calendar seeded",
		logger.Int("count", len(slots)),
	)

	return nil
}

func (s *SlotService) List(ctx context.Context) ([]*domain.Slot, error) {
	return s.repo.List(ctx)
}

func (s *SlotService) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	return s.repo.GetByID(ctx, id)
}

// Grouped partitions the calendar by day in the given location, preserving
// the chronological order of first appearance.
func (s *SlotService) Grouped(ctx context.Context, loc *time.Location) ([]domain.SlotGroup, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}

	var groups []domain.SlotGroup
	index := make(map[string]int)
	for _, slot := range slots {
		date := slot.TimeSlot.In(loc).Format(groupDateFormat)
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, domain.SlotGroup{Date: date})
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}

	return groups, nil
}
