package get_day_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	availabilityRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/availability"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/types"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeBoatRepo struct {
	boats []*domain.Boat
	err   error
}

func (r *fakeBoatRepo) FilterActive(ctx context.Context) ([]*domain.Boat, error) {
	return r.boats, r.err
}

type fakeAvailabilityRepo struct {
	definitions map[int64]*domain.DayDefinition
	days        map[int64]*domain.Day
	variations  map[int64][]*domain.PriceVariation
}

func (r *fakeAvailabilityRepo) GetDayDefinition(ctx context.Context, boatID int64, date time.Time) (*domain.DayDefinition, error) {
	definition, ok := r.definitions[boatID]
	if !ok {
		return nil, availabilityRepo.ErrDayDefinitionNotFound
	}
	return definition, nil
}

func (r *fakeAvailabilityRepo) GetDay(ctx context.Context, boatID int64, date time.Time) (*domain.Day, error) {
	day, ok := r.days[boatID]
	if !ok {
		return nil, availabilityRepo.ErrDayNotFound
	}
	return day, nil
}

func (r *fakeAvailabilityRepo) FilterPriceVariations(ctx context.Context, boatID int64, date time.Time) ([]*domain.PriceVariation, error) {
	return r.variations[boatID], nil
}

func testDate() time.Time {
	return time.Date(2026, time.July, 14, 0, 0, 0, 0, time.UTC)
}

func testDefinition() *domain.DayDefinition {
	return &domain.DayDefinition{
		ID:                  1,
		BoatID:              1,
		FirstTime:           types.TimeString("09:00"),
		HoursPerSlot:        2,
		NSlots:              3,
		PricePerHour:        decimal.NewFromInt(10),
		NSlotsDealThreshold: 3,
		DiscountWhenDeal:    decimal.RequireFromString("0.1"),
		ResidentDiscount:    decimal.RequireFromString("0.25"),
	}
}

func testDay(boatID int64, bookedPositions ...int) *domain.Day {
	booked := make(map[int]bool, len(bookedPositions))
	for _, position := range bookedPositions {
		booked[position] = true
	}
	day := &domain.Day{ID: boatID * 10, DefinitionID: 1, Date: testDate()}
	for position := 0; position < 3; position++ {
		day.Slots = append(day.Slots, domain.Slot{
			ID:       boatID*100 + int64(position),
			DayID:    day.ID,
			Position: position,
			Booked:   booked[position],
		})
	}
	return day
}

func TestGetDayAvailability_FullyFreeDay(t *testing.T) {
	uc := NewUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Name: "Grey Goose", Active: true}}},
		&fakeAvailabilityRepo{
			definitions: map[int64]*domain.DayDefinition{1: testDefinition()},
			days:        map[int64]*domain.Day{1: testDay(1)},
		},
		&fakeLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	require.False(t, resp.Error)
	require.Len(t, resp.Data, 1)

	offers := resp.Data[0].Availability
	assert.Len(t, offers, 6)

	// трехслотовая комбинация получает скидку сделки
	for _, offer := range offers {
		if len(offer.Slots) == 3 {
			assert.Equal(t, "54.00", offer.Price.StringFixed(2))
			assert.Equal(t, "09:00", offer.FromHour.String())
			assert.Equal(t, "15:00", offer.ToHour.String())
		}
	}
}

func TestGetDayAvailability_ResidentDiscount(t *testing.T) {
	uc := NewUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}},
		&fakeAvailabilityRepo{
			definitions: map[int64]*domain.DayDefinition{1: testDefinition()},
			days:        map[int64]*domain.Day{1: testDay(1)},
		},
		&fakeLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), ApplyResidentDiscount: true})
	require.NoError(t, err)

	for _, offer := range resp.Data[0].Availability {
		if len(offer.Slots) == 3 {
			assert.Equal(t, "40.50", offer.Price.StringFixed(2))
		}
	}
}

func TestGetDayAvailability_BookedSlotNeverOffered(t *testing.T) {
	uc := NewUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}},
		&fakeAvailabilityRepo{
			definitions: map[int64]*domain.DayDefinition{1: testDefinition()},
			days:        map[int64]*domain.Day{1: testDay(1, 1)},
		},
		&fakeLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	// позиции 0 и 2 свободны, но не смежны: только одиночные комбинации
	offers := resp.Data[0].Availability
	assert.Len(t, offers, 2)
	for _, offer := range offers {
		assert.Len(t, offer.Slots, 1)
		assert.NotEqual(t, 1, offer.Slots[0].Position)
	}
}

func TestGetDayAvailability_BoatWithoutDataIsSkipped(t *testing.T) {
	uc := NewUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{
			{ID: 1, Active: true},
			{ID: 2, Active: true},
		}},
		&fakeAvailabilityRepo{
			definitions: map[int64]*domain.DayDefinition{1: testDefinition()},
			days:        map[int64]*domain.Day{1: testDay(1)},
		},
		&fakeLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Data[0].Boat.ID)
}

func TestGetDayAvailability_FullyBookedDayDegradesToEmpty(t *testing.T) {
	uc := NewUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}},
		&fakeAvailabilityRepo{
			definitions: map[int64]*domain.DayDefinition{1: testDefinition()},
			days:        map[int64]*domain.Day{1: testDay(1, 0, 1, 2)},
		},
		&fakeLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	assert.False(t, resp.Error)
	assert.Empty(t, resp.Data)
}

func TestGetDayAvailability_BoatListFailureIsAnError(t *testing.T) {
	uc := NewUseCase(
		&fakeBoatRepo{err: errors.New("db down")},
		&fakeAvailabilityRepo{},
		&fakeLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetDayAvailability_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeBoatRepo{}, &fakeAvailabilityRepo{}, &fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
