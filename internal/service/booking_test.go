package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/guregu/null.v4"

	"github.com/3lokai/Booking-system/internal/domain"
	"github.com/3lokai/Booking-system/internal/service/ports/mocks"
)

const testEmailDomain = "@publicissapient.com"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*mocks.MockSlotRepo, *mocks.MockSlotNotifier, *BookingService) {
	t.Helper()
	repo := mocks.NewMockSlotRepo(t)
	notifier := mocks.NewMockSlotNotifier(t)
	svc := NewBookingService(repo, notifier, testEmailDomain, 24*time.Hour, newTestLogger(t))
	return repo, notifier, svc
}

func validInput() domain.BookingInput {
	return domain.BookingInput{
		Name:        "Jane Doe",
		Email:       "jane.doe@publicissapient.com",
		AccountName: "Acme",
		SlotID:      "c56a4180-65aa-42ec-a945-5fd21dec0538",
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	repo, notifier, svc := newBookingService(t)

	in := validInput()
	booked := &domain.Slot{
		ID:          in.SlotID,
		TimeSlot:    time.Date(2025, time.January, 8, 10, 0, 0, 0, time.UTC),
		IsBooked:    true,
		BookerName:  null.StringFrom(in.Name),
		BookerEmail: null.StringFrom(in.Email),
		AccountName: null.StringFrom(in.AccountName),
	}

	repo.EXPECT().FindBookedByIdentity(mock.Anything, in.Name, in.Email, in.AccountName).
		Return(nil, domain.ErrBookingNotFound)
	repo.EXPECT().Book(mock.Anything, in.SlotID, in).Return(booked, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, booked).Return()

	slot, err := svc.Book(context.Background(), in)

	require.NoError(t, err)
	assert.True(t, slot.IsBooked)
	assert.Equal(t, in.SlotID, slot.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_WrongEmailDomain(t *testing.T) {
	_, _, svc := newBookingService(t)

	in := validInput()
	in.Email = "jane@gmail.com"

	_, err := svc.Book(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), testEmailDomain)
}

func TestBookingService_Book_NoSlotSelected(t *testing.T) {
	_, _, svc := newBookingService(t)

	in := validInput()
	in.SlotID = ""

	_, err := svc.Book(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "select a time slot")
}

func TestBookingService_Book_MalformedSlotID(t *testing.T) {
	_, _, svc := newBookingService(t)

	in := validInput()
	in.SlotID = "not-a-uuid"

	_, err := svc.Book(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestBookingService_Book_MalformedSlotIDAfterValidation(t *testing.T) {
	_, _, svc := newBookingService(t)

	in := validInput()
	in.SlotID = "not-a-uuid"
	in.Email = "jane@gmail.com"

	_, err := svc.Book(context.Background(), in)

	// Порядок проверок сохраняется: сначала домен почты, потом id слота.
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), testEmailDomain)
}

func TestBookingService_Book_MissingFields(t *testing.T) {
	_, _, svc := newBookingService(t)

	in := validInput()
	in.Name = ""

	_, err := svc.Book(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "fill in all fields")
}

func TestBookingService_Book_EmptyFormFailsDomainCheckFirst(t *testing.T) {
	_, _, svc := newBookingService(t)

	// Пустая форма падает на первой проверке, без обращений к хранилищу.
	_, err := svc.Book(context.Background(), domain.BookingInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), testEmailDomain)
}

func TestBookingService_Book_ConflictTaggedEmail(t *testing.T) {
	repo, _, svc := newBookingService(t)

	in := validInput()
	existing := &domain.Slot{
		ID:          "other-slot",
		IsBooked:    true,
		BookerName:  null.StringFrom("Someone Else"),
		BookerEmail: null.StringFrom(in.Email),
		AccountName: null.StringFrom("Other Account"),
	}

	repo.EXPECT().FindBookedByIdentity(mock.Anything, in.Name, in.Email, in.AccountName).
		Return(existing, nil)

	_, err := svc.Book(context.Background(), in)

	require.Error(t, err)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConflictEmail, conflict.Field)
	assert.Equal(t, in.Email, conflict.Value)
}

func TestBookingService_Book_ConflictEmailWinsOverAccount(t *testing.T) {
	repo, _, svc := newBookingService(t)

	in := validInput()
	existing := &domain.Slot{
		ID:          "other-slot",
		IsBooked:    true,
		BookerName:  null.StringFrom(in.Name),
		BookerEmail: null.StringFrom(in.Email),
		AccountName: null.StringFrom(in.AccountName),
	}

	repo.EXPECT().FindBookedByIdentity(mock.Anything, in.Name, in.Email, in.AccountName).
		Return(existing, nil)

	_, err := svc.Book(context.Background(), in)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConflictEmail, conflict.Field)
}

func TestBookingService_Book_ConflictTaggedAccount(t *testing.T) {
	repo, _, svc := newBookingService(t)

	in := validInput()
	existing := &domain.Slot{
		ID:          "other-slot",
		IsBooked:    true,
		BookerName:  null.StringFrom("Someone Else"),
		BookerEmail: null.StringFrom("someone.else@publicissapient.com"),
		AccountName: null.StringFrom(in.AccountName),
	}

	repo.EXPECT().FindBookedByIdentity(mock.Anything, in.Name, in.Email, in.AccountName).
		Return(existing, nil)

	_, err := svc.Book(context.Background(), in)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConflictAccount, conflict.Field)
	assert.Equal(t, in.AccountName, conflict.Value)
}

func TestBookingService_Book_ConflictTaggedName(t *testing.T) {
	repo, _, svc := newBookingService(t)

	in := validInput()
	existing := &domain.Slot{
		ID:          "other-slot",
		IsBooked:    true,
		BookerName:  null.StringFrom(in.Name),
		BookerEmail: null.StringFrom("someone.else@publicissapient.com"),
		AccountName: null.StringFrom("Other Account"),
	}

	repo.EXPECT().FindBookedByIdentity(mock.Anything, in.Name, in.Email, in.AccountName).
		Return(existing, nil)

	_, err := svc.Book(context.Background(), in)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConflictName, conflict.Field)
	assert.Equal(t, in.Name, conflict.Value)
}

func TestBookingService_Book_ConflictProbeError(t *testing.T) {
	repo, _, svc := newBookingService(t)

	in := validInput()
	repo.EXPECT().FindBookedByIdentity(mock.Anything, in.Name, in.Email, in.AccountName).
		Return(nil, errors.New("db error"))

	_, err := svc.Book(context.Background(), in)

	require.Error(t, err)
}

func TestBookingService_Book_SlotTaken(t *testing.T) {
	repo, _, svc := newBookingService(t)

	in := validInput()
	repo.EXPECT().FindBookedByIdentity(mock.Anything, in.Name, in.Email, in.AccountName).
		Return(nil, domain.ErrBookingNotFound)
	repo.EXPECT().Book(mock.Anything, in.SlotID, in).Return(nil, domain.ErrSlotTaken)

	_, err := svc.Book(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingService_Book_SlotNotFound(t *testing.T) {
	repo, _, svc := newBookingService(t)

	in := validInput()
	repo.EXPECT().FindBookedByIdentity(mock.Anything, in.Name, in.Email, in.AccountName).
		Return(nil, domain.ErrBookingNotFound)
	repo.EXPECT().Book(mock.Anything, in.SlotID, in).Return(nil, domain.ErrSlotNotFound)

	_, err := svc.Book(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestBookingService_SendDueReminders_Success(t *testing.T) {
	repo, notifier, svc := newBookingService(t)

	due := []*domain.Slot{
		{ID: "s1", IsBooked: true, AccountName: null.StringFrom("Acme")},
		{ID: "s2", IsBooked: true, AccountName: null.StringFrom("Globex")},
	}

	repo.EXPECT().ClaimDueReminders(mock.Anything, 24*time.Hour).Return(due, nil)
	notifier.EXPECT().NotifyUpcomingSession(mock.Anything, due[0]).Return()
	notifier.EXPECT().NotifyUpcomingSession(mock.Anything, due[1]).Return()

	result, err := svc.SendDueReminders(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_SendDueReminders_NoneDue(t *testing.T) {
	repo, _, svc := newBookingService(t)

	repo.EXPECT().ClaimDueReminders(mock.Anything, 24*time.Hour).Return(nil, nil)

	result, err := svc.SendDueReminders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_SendDueReminders_RepoError(t *testing.T) {
	repo, _, svc := newBookingService(t)

	repo.EXPECT().ClaimDueReminders(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.SendDueReminders(context.Background())

	require.Error(t, err)
}
