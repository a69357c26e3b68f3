package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	bookingRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/booking"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/types"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	updatedSessionID string
	updatedStatus    domain.BookingStatus
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if booking, ok := r.bookings[id]; ok {
		copied := *booking
		return &copied, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	for _, booking := range r.bookings {
		if booking.SessionID == sessionID {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByLocator(ctx context.Context, locator string) (*domain.Booking, error) {
	for _, booking := range r.bookings {
		if booking.Locator == locator {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) UpdateSessionID(ctx context.Context, id int64, sessionID string) error {
	r.updatedSessionID = sessionID
	r.bookings[id].SessionID = sessionID
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	r.updatedStatus = status
	r.bookings[id].Status = status
	return nil
}

type fakeAvailabilityRepo struct{}

func (r *fakeAvailabilityRepo) GetSlotsByIDs(ctx context.Context, ids []int64) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0, len(ids))
	for i, id := range ids {
		slots = append(slots, domain.Slot{ID: id, DayID: 5, Position: i})
	}
	return slots, nil
}

func (r *fakeAvailabilityRepo) GetDayByID(ctx context.Context, id int64) (*domain.Day, error) {
	return &domain.Day{ID: id, DefinitionID: 3}, nil
}

func (r *fakeAvailabilityRepo) GetDayDefinitionByID(ctx context.Context, id int64) (*domain.DayDefinition, error) {
	return &domain.DayDefinition{ID: id, BoatID: 1}, nil
}

type fakeBoatRepo struct{}

func (r *fakeBoatRepo) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	return &domain.Boat{ID: id, Name: "Mar Azul"}, nil
}

type fakePaymentGateway struct {
	sessionID   string
	description string
	price       decimal.Decimal
}

func (g *fakePaymentGateway) CreateCheckoutSession(ctx context.Context, name, description string, price decimal.Decimal) (string, error) {
	g.description = description
	g.price = price
	return g.sessionID, nil
}

type sentEmail struct {
	subject   string
	recipient string
	template  string
}

type fakeMailer struct {
	sent []sentEmail
}

func (m *fakeMailer) SendEmail(ctx context.Context, subject, recipient, template string, variables map[string]interface{}) error {
	m.sent = append(m.sent, sentEmail{subject: subject, recipient: recipient, template: template})
	return nil
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           42,
		Locator:      "ABCD234567",
		Price:        decimal.RequireFromString("60.00"),
		SlotIDs:      []int64{1, 2},
		Date:         time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		CheckinHour:  types.TimeString("09:00"),
		CheckoutHour: types.TimeString("13:00"),
		CustomerName: "Ada",
		Status:       domain.StatusPending,
		SessionID:    "cs_test_123",
	}
}

func newTestService(repo *fakeBookingRepo, gateway *fakePaymentGateway, mailer *fakeMailer) *Service {
	return NewService(repo, &fakeAvailabilityRepo{}, &fakeBoatRepo{}, gateway, mailer, "owner@example.com", &fakeLogger{})
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: pendingBooking()}}
	svc := newTestService(repo, &fakePaymentGateway{}, &fakeMailer{})

	resp, err := svc.GetByID(context.Background(), 42, false)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "60.00", resp.Price)
	assert.Equal(t, "2026-07-10", resp.Date)
	assert.Equal(t, "09:00", resp.CheckinHour)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, &fakePaymentGateway{}, &fakeMailer{})

	_, err := svc.GetByID(context.Background(), 99, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_GeneratesNewSession(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: pendingBooking()}}
	gateway := &fakePaymentGateway{sessionID: "cs_test_456"}
	svc := newTestService(repo, gateway, &fakeMailer{})

	resp, err := svc.GetByID(context.Background(), 42, true)
	require.NoError(t, err)

	assert.Equal(t, "cs_test_456", resp.SessionID)
	assert.Equal(t, "cs_test_456", repo.updatedSessionID)
	assert.Equal(t, "Renting for 2026-07-10 from 09:00 to 13:00", gateway.description)
	assert.True(t, gateway.price.Equal(decimal.RequireFromString("60.00")))
}

func TestGetBySession(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: pendingBooking()}}
	svc := newTestService(repo, &fakePaymentGateway{}, &fakeMailer{})

	resp, err := svc.GetBySession(context.Background(), "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)

	_, err = svc.GetBySession(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetBySession(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByLocator(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: pendingBooking()}}
	svc := newTestService(repo, &fakePaymentGateway{}, &fakeMailer{})

	resp, err := svc.GetByLocator(context.Background(), "ABCD234567")
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)

	_, err = svc.GetByLocator(context.Background(), "ZZZZ999999")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByLocator(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkAsError_NotifiesOwner(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: pendingBooking()}}
	mailer := &fakeMailer{}
	svc := newTestService(repo, &fakePaymentGateway{}, mailer)

	resp, err := svc.MarkAsError(context.Background(), "cs_test_123")
	require.NoError(t, err)

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, domain.StatusError, repo.updatedStatus)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Booking ABCD234567 payment error", mailer.sent[0].subject)
	assert.Equal(t, "owner@example.com", mailer.sent[0].recipient)
	assert.Equal(t, "payment_error_notification", mailer.sent[0].template)
}

func TestMarkAsError_ConfirmedBookingSkipsEmail(t *testing.T) {
	confirmed := pendingBooking()
	confirmed.Status = domain.StatusConfirmed
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: confirmed}}
	mailer := &fakeMailer{}
	svc := newTestService(repo, &fakePaymentGateway{}, mailer)

	resp, err := svc.MarkAsError(context.Background(), "cs_test_123")
	require.NoError(t, err)

	assert.Equal(t, "error", resp.Status)
	assert.Empty(t, mailer.sent)
}
