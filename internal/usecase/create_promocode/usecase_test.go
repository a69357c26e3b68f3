package create_promocode

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	promocodeRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/promocode"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakePromocodeRepo struct {
	existing map[string]bool
	created  *domain.Promocode
}

func (r *fakePromocodeRepo) Create(ctx context.Context, promocode *domain.Promocode) (*domain.Promocode, error) {
	if r.existing[promocode.Name] {
		return nil, promocodeRepo.ErrPromocodeExists
	}
	created := *promocode
	created.ID = 7
	r.created = &created
	return &created, nil
}

func validRequest() *Request {
	return &Request{
		Name:        "SUMMER",
		UseFrom:     time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		UseTo:       time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
		BookingFrom: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		BookingTo:   time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		Factor:      decimal.RequireFromString("0.1"),
		LimitOfUses: 100,
	}
}

func TestCreatePromocode_Success(t *testing.T) {
	repo := &fakePromocodeRepo{}
	uc := NewUseCase(repo, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "SUMMER", resp.Name)
	assert.Equal(t, 100, resp.LimitOfUses)
	assert.Zero(t, resp.NumberOfUses)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.Factor.Equal(decimal.RequireFromString("0.1")))
}

func TestCreatePromocode_DuplicateName(t *testing.T) {
	repo := &fakePromocodeRepo{existing: map[string]bool{"SUMMER": true}}
	uc := NewUseCase(repo, &fakeLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPromocodeExists)
}

func TestCreatePromocode_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty name", func(req *Request) { req.Name = "" }},
		{"name too long", func(req *Request) { req.Name = strings.Repeat("A", domain.MaxPromocodeNameLength+1) }},
		{"use window reversed", func(req *Request) { req.UseFrom, req.UseTo = req.UseTo, req.UseFrom }},
		{"booking window reversed", func(req *Request) { req.BookingFrom, req.BookingTo = req.BookingTo, req.BookingFrom }},
		{"zero use window", func(req *Request) { req.UseFrom = time.Time{} }},
		{"negative factor", func(req *Request) { req.Factor = decimal.RequireFromString("-0.1") }},
		{"zero limit", func(req *Request) { req.LimitOfUses = 0 }},
	}

	uc := NewUseCase(&fakePromocodeRepo{}, &fakeLogger{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
