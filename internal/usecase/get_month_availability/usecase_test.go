package get_month_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	availabilityRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/availability"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakeBoatRepo struct {
	boats []*domain.Boat
	err   error
}

func (r *fakeBoatRepo) FilterActive(ctx context.Context) ([]*domain.Boat, error) {
	return r.boats, r.err
}

type fakeAvailabilityRepo struct {
	// дни по лодкам; отсутствие записи означает ErrDayNotFound
	days    map[int64]*domain.Day
	err     error
	lookups int
}

func (r *fakeAvailabilityRepo) GetDay(ctx context.Context, boatID int64, date time.Time) (*domain.Day, error) {
	r.lookups++
	if r.err != nil {
		return nil, r.err
	}
	day, ok := r.days[boatID]
	if !ok {
		return nil, availabilityRepo.ErrDayNotFound
	}
	return day, nil
}

func dayWithSlots(bookedCount, totalCount int) *domain.Day {
	day := &domain.Day{ID: 1, Date: time.Now()}
	for position := 0; position < totalCount; position++ {
		day.Slots = append(day.Slots, domain.Slot{
			Position: position,
			Booked:   position < bookedCount,
		})
	}
	return day
}

func TestAggregateDayType(t *testing.T) {
	tests := []struct {
		name  string
		types []domain.DayAvailabilityType
		want  domain.DayAvailabilityType
	}{
		{name: "no boats", types: nil, want: domain.DayNoAvailability},
		{
			name:  "all free",
			types: []domain.DayAvailabilityType{domain.DayFree, domain.DayFree},
			want:  domain.DayFree,
		},
		{
			name:  "all full",
			types: []domain.DayAvailabilityType{domain.DayFull, domain.DayFull},
			want:  domain.DayFull,
		},
		{
			name:  "free and full mix",
			types: []domain.DayAvailabilityType{domain.DayFree, domain.DayFull},
			want:  domain.DayPartiallyFree,
		},
		{
			name:  "partially free and no availability",
			types: []domain.DayAvailabilityType{domain.DayPartiallyFree, domain.DayNoAvailability},
			want:  domain.DayPartiallyFree,
		},
		{
			name:  "full and no availability",
			types: []domain.DayAvailabilityType{domain.DayFull, domain.DayNoAvailability},
			want:  domain.DayFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateDayType(tt.types))
		})
	}
}

func TestGetMonthAvailability_PastDaysSkipLookup(t *testing.T) {
	repo := &fakeAvailabilityRepo{days: map[int64]*domain.Day{1: dayWithSlots(0, 3)}}
	uc := NewUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}},
		repo,
		&fakeLogger{},
	)
	// середина месяца: первые 14 дней в прошлом
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, time.July, 15, 10, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{Month: 7, Year: 2026})
	require.NoError(t, err)
	require.Len(t, resp.Data, 31)

	for i := 0; i < 14; i++ {
		assert.Equal(t, domain.DayNoAvailability, resp.Data[i].Name)
		assert.True(t, resp.Data[i].Disabled)
	}
	for i := 14; i < 31; i++ {
		assert.Equal(t, domain.DayFree, resp.Data[i].Name)
		assert.False(t, resp.Data[i].Disabled)
	}

	// по одному обращению на каждый не прошедший день
	assert.Equal(t, 17, repo.lookups)
}

func TestGetMonthAvailability_FullDayIsDisabled(t *testing.T) {
	uc := NewUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}},
		&fakeAvailabilityRepo{days: map[int64]*domain.Day{1: dayWithSlots(3, 3)}},
		&fakeLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{Month: 7, Year: 2026})
	require.NoError(t, err)

	for _, day := range resp.Data {
		assert.Equal(t, domain.DayFull, day.Name)
		assert.True(t, day.Disabled)
	}
}

func TestGetMonthAvailability_FailSafeOnRepositoryError(t *testing.T) {
	uc := NewUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}},
		&fakeAvailabilityRepo{err: errors.New("db down")},
		&fakeLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{Month: 2, Year: 2026})
	require.NoError(t, err)
	assert.False(t, resp.Error)
	require.Len(t, resp.Data, 28)

	for _, day := range resp.Data {
		assert.Equal(t, domain.DayNoAvailability, day.Name)
		assert.True(t, day.Disabled)
	}
}

func TestGetMonthAvailability_NoBoats(t *testing.T) {
	uc := NewUseCase(&fakeBoatRepo{}, &fakeAvailabilityRepo{}, &fakeLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{Month: 4, Year: 2026})
	require.NoError(t, err)

	for _, day := range resp.Data {
		assert.Equal(t, domain.DayNoAvailability, day.Name)
	}
}

func TestGetMonthAvailability_InvalidMonth(t *testing.T) {
	uc := NewUseCase(&fakeBoatRepo{}, &fakeAvailabilityRepo{}, &fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{Month: 13, Year: 2026})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
