package generate_availability

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/types"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeBoatRepo struct {
	boats []*domain.Boat
}

func (r *fakeBoatRepo) FilterActive(ctx context.Context) ([]*domain.Boat, error) {
	return r.boats, nil
}

type fakeAvailabilityRepo struct {
	definitions map[int64][]*domain.DayDefinition
	exists      bool

	createdDays  []time.Time
	createdSlots []domain.Slot
	deletedYear  int
}

func (r *fakeAvailabilityRepo) FilterDayDefinitions(ctx context.Context, boatID int64) ([]*domain.DayDefinition, error) {
	return r.definitions[boatID], nil
}

func (r *fakeAvailabilityRepo) ExistsDaysForYear(ctx context.Context, definitionIDs []int64, year int) (bool, error) {
	return r.exists, nil
}

func (r *fakeAvailabilityRepo) CreateDay(ctx context.Context, definitionID int64, date time.Time) (*domain.Day, error) {
	r.createdDays = append(r.createdDays, date)
	return &domain.Day{ID: int64(len(r.createdDays)), DefinitionID: definitionID, Date: date}, nil
}

func (r *fakeAvailabilityRepo) CreateSlots(ctx context.Context, slots []domain.Slot) ([]domain.Slot, error) {
	r.createdSlots = append(r.createdSlots, slots...)
	return slots, nil
}

func (r *fakeAvailabilityRepo) DeleteDaysForYear(ctx context.Context, definitionIDs []int64, year int) error {
	r.deletedYear = year
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func summerDefinition() *domain.DayDefinition {
	return &domain.DayDefinition{
		ID:           1,
		BoatID:       1,
		FirstTime:    types.TimeString("09:00"),
		HoursPerSlot: 2,
		NSlots:       3,
		PricePerHour: decimal.NewFromInt(10),
		FromDate:     time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC),
		ToDate:       time.Date(2027, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(boats *fakeBoatRepo, availability *fakeAvailabilityRepo) *UseCase {
	return NewUseCase(boats, availability, &fakeTxManager{}, &fakeLogger{})
}

func TestGenerateAvailability_CreatesDaysAndSlots(t *testing.T) {
	availability := &fakeAvailabilityRepo{
		definitions: map[int64][]*domain.DayDefinition{1: {summerDefinition()}},
	}
	uc := newTestUseCase(&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}}, availability)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2027})
	require.NoError(t, err)

	// 10 дней диапазона определения, по 3 слота на день
	assert.Equal(t, 10, resp.DaysCreated)
	assert.Equal(t, 30, resp.SlotsCreated)
	require.Len(t, availability.createdDays, 10)
	assert.Equal(t, time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC), availability.createdDays[0])
	assert.Equal(t, time.Date(2027, time.June, 10, 0, 0, 0, 0, time.UTC), availability.createdDays[9])

	// тайминг слотов выводится из определения
	first := availability.createdSlots[0]
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "09:00", first.FromHour.String())
	assert.Equal(t, "11:00", first.ToHour.String())
	assert.False(t, first.Booked)

	last := availability.createdSlots[2]
	assert.Equal(t, 2, last.Position)
	assert.Equal(t, "13:00", last.FromHour.String())
	assert.Equal(t, "15:00", last.ToHour.String())
}

func TestGenerateAvailability_ClampsToRequestedYear(t *testing.T) {
	definition := summerDefinition()
	definition.FromDate = time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	definition.ToDate = time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC)

	availability := &fakeAvailabilityRepo{
		definitions: map[int64][]*domain.DayDefinition{1: {definition}},
	}
	uc := newTestUseCase(&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}}, availability)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2027})
	require.NoError(t, err)

	// только 1-5 января попадают в запрошенный год
	assert.Equal(t, 5, resp.DaysCreated)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), availability.createdDays[0])
}

func TestGenerateAvailability_DefinitionOutsideYear(t *testing.T) {
	availability := &fakeAvailabilityRepo{
		definitions: map[int64][]*domain.DayDefinition{1: {summerDefinition()}},
	}
	uc := newTestUseCase(&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}}, availability)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2030})
	require.NoError(t, err)
	assert.Zero(t, resp.DaysCreated)
	assert.Zero(t, resp.SlotsCreated)
}

func TestGenerateAvailability_DuplicateRunRejected(t *testing.T) {
	availability := &fakeAvailabilityRepo{
		definitions: map[int64][]*domain.DayDefinition{1: {summerDefinition()}},
		exists:      true,
	}
	uc := newTestUseCase(&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}}, availability)

	_, err := uc.Execute(context.Background(), &Request{Year: 2027})
	assert.ErrorIs(t, err, ErrAvailabilityAlreadyCreated)
	assert.Empty(t, availability.createdDays)
}

func TestGenerateAvailability_NoDefinitions(t *testing.T) {
	uc := newTestUseCase(
		&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}},
		&fakeAvailabilityRepo{definitions: map[int64][]*domain.DayDefinition{}},
	)

	_, err := uc.Execute(context.Background(), &Request{Year: 2027})
	assert.ErrorIs(t, err, ErrNoDayDefinitions)
}

func TestDeleteAvailability(t *testing.T) {
	availability := &fakeAvailabilityRepo{
		definitions: map[int64][]*domain.DayDefinition{1: {summerDefinition()}},
	}
	uc := newTestUseCase(&fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Active: true}}}, availability)

	err := uc.ExecuteDelete(context.Background(), &DeleteRequest{Year: 2027})
	require.NoError(t, err)
	assert.Equal(t, 2027, availability.deletedYear)
}
