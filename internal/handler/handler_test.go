package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"gopkg.in/guregu/null.v4"

	"github.com/3lokai/Booking-system/internal/domain"
	"github.com/3lokai/Booking-system/internal/handler/dto"
	hmocks "github.com/3lokai/Booking-system/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockSlotSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	slotSvc := hmocks.NewMockSlotSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(slotSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/slots", h.ListSlots)
		api.GET("/slots/:id", h.GetSlot)
		api.POST("/bookings", h.CreateBooking)
	}

	return slotSvc, bookingSvc, r
}

func bookedSlot(id string) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		TimeSlot:    time.Date(2025, time.January, 8, 10, 0, 0, 0, time.UTC),
		IsBooked:    true,
		BookerName:  null.StringFrom("Jane Doe"),
		BookerEmail: null.StringFrom("jane.doe@publicissapient.com"),
		AccountName: null.StringFrom("Acme"),
	}
}

// --- Slots ---

func TestHandler_ListSlots_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	groups := []domain.SlotGroup{
		{Date: "Wed, Jan 8", Slots: []*domain.Slot{
			{ID: "s1", TimeSlot: time.Date(2025, time.January, 8, 8, 0, 0, 0, time.UTC)},
			{ID: "s2", TimeSlot: time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)},
		}},
		{Date: "Thu, Jan 9", Slots: []*domain.Slot{
			{ID: "s3", TimeSlot: time.Date(2025, time.January, 9, 8, 0, 0, 0, time.UTC)},
		}},
	}
	slotSvc.EXPECT().Grouped(mock.Anything, time.UTC).Return(groups, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotGroupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Wed, Jan 8", resp[0].Date)
	assert.Len(t, resp[0].Slots, 2)
	assert.Equal(t, "2025-01-08T08:00:00Z", resp[0].Slots[0].StartsAt)
	assert.Equal(t, "2025-01-08T09:00:00Z", resp[0].Slots[0].EndsAt)
}

func TestHandler_ListSlots_ViewerTimezone(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotSvc.EXPECT().Grouped(mock.Anything, mock.Anything).Return([]domain.SlotGroup{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?tz=Europe/Moscow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	call := slotSvc.Calls[0]
	loc, ok := call.Arguments[1].(*time.Location)
	require.True(t, ok)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestHandler_ListSlots_UnknownTimezone(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?tz=Not/AZone", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlot_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	slotSvc.EXPECT().GetByID(mock.Anything, id).Return(bookedSlot(id), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsBooked)
	require.NotNil(t, resp.AccountName)
	assert.Equal(t, "Acme", *resp.AccountName)
}

func TestHandler_GetSlot_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlot_NotFound(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	slotSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrSlotNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	in := domain.BookingInput{
		Name:        "Jane Doe",
		Email:       "jane.doe@publicissapient.com",
		AccountName: "Acme",
		SlotID:      id,
	}
	bookingSvc.EXPECT().Book(mock.Anything, in).Return(bookedSlot(id), nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Name:        in.Name,
		Email:       in.Email,
		AccountName: in.AccountName,
		SlotID:      in.SlotID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.True(t, resp.IsBooked)
}

func TestHandler_CreateBooking_MalformedJSON(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_ValidationError(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: please use your @publicissapient.com email address", domain.ErrValidation))

	body := []byte(`{"name":"Jane Doe","email":"jane@gmail.com","account_name":"Acme","slot_id":"s1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "@publicissapient.com")
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, &domain.ConflictError{
			Field: domain.ConflictEmail,
			Value: "jane.doe@publicissapient.com",
		})

	body := []byte(`{"name":"Jane Doe","email":"jane.doe@publicissapient.com","account_name":"Acme","slot_id":"s1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp.Field)
	assert.Equal(t, "jane.doe@publicissapient.com", resp.Value)
}

func TestHandler_CreateBooking_SlotTaken(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("commit booking: %w", domain.ErrSlotTaken))

	body := []byte(`{"name":"Jane Doe","email":"jane.doe@publicissapient.com","account_name":"Acme","slot_id":"s1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_SlotNotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("commit booking: %w", domain.ErrSlotNotFound))

	body := []byte(`{"name":"Jane Doe","email":"jane.doe@publicissapient.com","account_name":"Acme","slot_id":"s1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_StoreError(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("commit booking: network down"))

	body := []byte(`{"name":"Jane Doe","email":"jane.doe@publicissapient.com","account_name":"Acme","slot_id":"s1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
