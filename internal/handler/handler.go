package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/3lokai/Booking-system/internal/domain"
	"github.com/3lokai/Booking-system/internal/handler/dto"
)

type SlotSvc interface {
	Grouped(ctx context.Context, loc *time.Location) ([]domain.SlotGroup, error)
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
}

type BookingSvc interface {
	Book(ctx context.Context, in domain.BookingInput) (*domain.Slot, error)
}

type Handler struct {
	slotService    SlotSvc
	bookingService BookingSvc
}

func NewHandler(slotService SlotSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		slotService:    slotService,
		bookingService: bookingService,
	}
}

// Slots

func (h *Handler) ListSlots(c *ginext.Context) {
	loc := time.UTC
	if tz := c.Query("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown timezone"})
			return
		}
		loc = parsed
	}

	groups, err := h.slotService.Grouped(c.Request.Context(), loc)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotGroupResponses(groups))
}

func (h *Handler) GetSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	slot, err := h.slotService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in := domain.BookingInput{
		Name:        req.Name,
		Email:       req.Email,
		AccountName: req.AccountName,
		SlotID:      req.SlotID,
	}

	slot, err := h.bookingService.Book(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, dto.ConflictResponse{
			Error: conflict.Error(),
			Field: string(conflict.Field),
			Value: conflict.Value,
		})

	case errors.Is(err, domain.ErrSlotTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "slot is already booked, please pick another one"})

	case errors.Is(err, domain.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "slot not found"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to book slot, please try again"})
	}
}
