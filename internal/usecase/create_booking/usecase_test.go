package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	promocodeRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/promocode"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/types"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	created *domain.Booking
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 42
	r.created = &created
	return &created, nil
}

type fakeAvailabilityRepo struct {
	slots      map[int64]domain.Slot
	day        *domain.Day
	definition *domain.DayDefinition
}

func (r *fakeAvailabilityRepo) GetSlotsByIDs(ctx context.Context, ids []int64) ([]domain.Slot, error) {
	found := make([]domain.Slot, 0, len(ids))
	for _, id := range ids {
		if slot, ok := r.slots[id]; ok {
			found = append(found, slot)
		}
	}
	return found, nil
}

func (r *fakeAvailabilityRepo) GetDayByID(ctx context.Context, id int64) (*domain.Day, error) {
	return r.day, nil
}

func (r *fakeAvailabilityRepo) GetDayDefinitionByID(ctx context.Context, id int64) (*domain.DayDefinition, error) {
	return r.definition, nil
}

type fakeBoatRepo struct {
	boat *domain.Boat
}

func (r *fakeBoatRepo) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	return r.boat, nil
}

type fakePromocodeRepo struct {
	promocode *domain.Promocode
}

func (r *fakePromocodeRepo) GetValid(ctx context.Context, name string, useDay, bookingDay time.Time) (*domain.Promocode, error) {
	if r.promocode == nil || r.promocode.Name != name {
		return nil, promocodeRepo.ErrPromocodeNotFound
	}
	return r.promocode, nil
}

type fakePaymentGateway struct {
	sessionID string
	price     decimal.Decimal
	err       error
}

func (g *fakePaymentGateway) CreateCheckoutSession(ctx context.Context, name, description string, price decimal.Decimal) (string, error) {
	g.price = price
	return g.sessionID, g.err
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func bookingFixture() (*fakeBookingRepo, *fakeAvailabilityRepo, *fakeBoatRepo, *fakePromocodeRepo, *fakePaymentGateway) {
	date := time.Date(2026, time.July, 14, 0, 0, 0, 0, time.UTC)
	availability := &fakeAvailabilityRepo{
		slots: map[int64]domain.Slot{
			1: {ID: 1, DayID: 10, Position: 0, FromHour: types.TimeString("09:00"), ToHour: types.TimeString("11:00")},
			2: {ID: 2, DayID: 10, Position: 1, FromHour: types.TimeString("11:00"), ToHour: types.TimeString("13:00")},
			3: {ID: 3, DayID: 10, Position: 2, FromHour: types.TimeString("13:00"), ToHour: types.TimeString("15:00"), Booked: true},
			4: {ID: 4, DayID: 20, Position: 0, FromHour: types.TimeString("09:00"), ToHour: types.TimeString("11:00")},
		},
		day:        &domain.Day{ID: 10, DefinitionID: 5, Date: date},
		definition: &domain.DayDefinition{ID: 5, BoatID: 7},
	}
	return &fakeBookingRepo{},
		availability,
		&fakeBoatRepo{boat: &domain.Boat{ID: 7, Name: "Grey Goose", Active: true}},
		&fakePromocodeRepo{},
		&fakePaymentGateway{sessionID: "cs_test_123"}
}

func newTestUseCase(
	bookings *fakeBookingRepo,
	availability *fakeAvailabilityRepo,
	boats *fakeBoatRepo,
	promocodes *fakePromocodeRepo,
	gateway *fakePaymentGateway,
) *UseCase {
	return NewUseCase(
		bookings,
		availability,
		boats,
		promocodes,
		gateway,
		&fakeTxManager{},
		decimal.RequireFromString("0.25"),
		&fakeLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		BasePrice:    decimal.NewFromInt(60),
		SlotIDs:      []int64{1, 2},
		CustomerName: "Ada",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bookings, availability, boats, promocodes, gateway := bookingFixture()
	uc := newTestUseCase(bookings, availability, boats, promocodes, gateway)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, "cs_test_123", resp.Booking.SessionID)
	assert.Equal(t, "60.00", resp.Booking.Price.StringFixed(2))
	assert.Equal(t, "09:00", resp.Booking.CheckinHour.String())
	assert.Equal(t, "13:00", resp.Booking.CheckoutHour.String())
	assert.Len(t, resp.Booking.Locator, domain.LocatorLength)
}

func TestCreateBooking_ResidentDiscount(t *testing.T) {
	bookings, availability, boats, promocodes, gateway := bookingFixture()
	uc := newTestUseCase(bookings, availability, boats, promocodes, gateway)

	req := validRequest()
	req.IsResident = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "45.00", resp.Booking.Price.StringFixed(2))
	// шлюзу уходит цена уже со скидкой
	assert.Equal(t, "45.00", gateway.price.StringFixed(2))
}

func TestCreateBooking_PromocodeAndResidentAreAdditive(t *testing.T) {
	bookings, availability, boats, promocodes, gateway := bookingFixture()
	promocodes.promocode = &domain.Promocode{
		Name:   "SUMMER",
		Factor: decimal.RequireFromString("0.1"),
	}
	uc := newTestUseCase(bookings, availability, boats, promocodes, gateway)

	req := validRequest()
	req.IsResident = true
	req.Promocode = "SUMMER"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	// 60 - 60*(0.25+0.1) = 39.00
	assert.Equal(t, "39.00", resp.Booking.Price.StringFixed(2))
	assert.Equal(t, "SUMMER", resp.Booking.Promocode)
}

func TestCreateBooking_UnknownPromocodeIsIgnored(t *testing.T) {
	bookings, availability, boats, promocodes, gateway := bookingFixture()
	uc := newTestUseCase(bookings, availability, boats, promocodes, gateway)

	req := validRequest()
	req.Promocode = "EXPIRED"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "60.00", resp.Booking.Price.StringFixed(2))

	// несработавший код не сохраняется: иначе при подтверждении оплаты
	// по нему попытались бы списать использование
	assert.Empty(t, resp.Booking.Promocode)
}

func TestCreateBooking_SlotValidation(t *testing.T) {
	tests := []struct {
		name    string
		slotIDs []int64
		wantErr error
	}{
		{name: "missing slot", slotIDs: []int64{1, 99}, wantErr: ErrSlotNotFound},
		{name: "slots from different days", slotIDs: []int64{1, 4}, wantErr: ErrNoSameDaySlots},
		{name: "already booked slot", slotIDs: []int64{2, 3}, wantErr: ErrSlotAlreadyBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings, availability, boats, promocodes, gateway := bookingFixture()
			uc := newTestUseCase(bookings, availability, boats, promocodes, gateway)

			req := validRequest()
			req.SlotIDs = tt.slotIDs

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	bookings, availability, boats, promocodes, gateway := bookingFixture()
	uc := newTestUseCase(bookings, availability, boats, promocodes, gateway)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "no slots", mutate: func(req *Request) { req.SlotIDs = nil }},
		{name: "zero base price", mutate: func(req *Request) { req.BasePrice = decimal.Zero }},
		{name: "empty customer name", mutate: func(req *Request) { req.CustomerName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestApplyDiscounts_Rounding(t *testing.T) {
	price := applyDiscounts(
		decimal.RequireFromString("33.33"),
		decimal.RequireFromString("0.25"),
		true,
		nil,
	)
	// 33.33 - 33.33*0.25 = 24.9975 -> 25.00
	assert.Equal(t, "25.00", price.StringFixed(2))
}
