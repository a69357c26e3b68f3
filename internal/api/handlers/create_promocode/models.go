package create_promocode

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	createPromocode "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/create_promocode"
)

var validate = validator.New()

// CreatePromocodeRequest HTTP request model
type CreatePromocodeRequest struct {
	Name        string `json:"name" validate:"required,alphanum,max=20"`
	UseFrom     string `json:"useFrom" validate:"required"`
	UseTo       string `json:"useTo" validate:"required"`
	BookingFrom string `json:"bookingFrom" validate:"required"`
	BookingTo   string `json:"bookingTo" validate:"required"`
	Factor      string `json:"factor" validate:"required"`
	LimitOfUses int    `json:"limitOfUses" validate:"required,gt=0"`
}

// PromocodeResponse HTTP response model
type PromocodeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	UseFrom      string `json:"useFrom"`
	UseTo        string `json:"useTo"`
	BookingFrom  string `json:"bookingFrom"`
	BookingTo    string `json:"bookingTo"`
	Factor       string `json:"factor"`
	LimitOfUses  int    `json:"limitOfUses"`
	NumberOfUses int    `json:"numberOfUses"`
}

// ToUseCaseRequest валидирует HTTP запрос и конвертирует его в модель use case
func (r *CreatePromocodeRequest) ToUseCaseRequest() (*createPromocode.Request, error) {
	if err := validate.Struct(r); err != nil {
		return nil, err
	}

	useFrom, err := time.Parse(domain.DateFormat, r.UseFrom)
	if err != nil {
		return nil, fmt.Errorf("parse useFrom: %w", err)
	}
	useTo, err := time.Parse(domain.DateFormat, r.UseTo)
	if err != nil {
		return nil, fmt.Errorf("parse useTo: %w", err)
	}
	bookingFrom, err := time.Parse(domain.DateFormat, r.BookingFrom)
	if err != nil {
		return nil, fmt.Errorf("parse bookingFrom: %w", err)
	}
	bookingTo, err := time.Parse(domain.DateFormat, r.BookingTo)
	if err != nil {
		return nil, fmt.Errorf("parse bookingTo: %w", err)
	}
	factor, err := decimal.NewFromString(r.Factor)
	if err != nil {
		return nil, fmt.Errorf("parse factor: %w", err)
	}

	return &createPromocode.Request{
		Name:        r.Name,
		UseFrom:     useFrom,
		UseTo:       useTo,
		BookingFrom: bookingFrom,
		BookingTo:   bookingTo,
		Factor:      factor,
		LimitOfUses: r.LimitOfUses,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPromocode.Response) *PromocodeResponse {
	return &PromocodeResponse{
		ID:           resp.ID,
		Name:         resp.Name,
		UseFrom:      resp.UseFrom.Format(domain.DateFormat),
		UseTo:        resp.UseTo.Format(domain.DateFormat),
		BookingFrom:  resp.BookingFrom.Format(domain.DateFormat),
		BookingTo:    resp.BookingTo.Format(domain.DateFormat),
		Factor:       resp.Factor.String(),
		LimitOfUses:  resp.LimitOfUses,
		NumberOfUses: resp.NumberOfUses,
	}
}
