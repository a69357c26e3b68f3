package get_day_availability

import (
	getDayAvailability "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/get_day_availability"
)

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	Error bool                   `json:"error"`
	Data  []BoatAvailabilityItem `json:"data"`
}

// BoatAvailabilityItem предложения одной лодки
type BoatAvailabilityItem struct {
	Boat         BoatItem    `json:"boat"`
	Availability []OfferItem `json:"availability"`
}

// BoatItem данные лодки
type BoatItem struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Photos      []PhotoItem `json:"photos"`
}

// PhotoItem фотография лодки
type PhotoItem struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// OfferItem комбинация слотов с ценой
type OfferItem struct {
	Slots    []SlotItem `json:"slots"`
	Price    string     `json:"price"`
	FromHour string     `json:"fromHour"`
	ToHour   string     `json:"toHour"`
}

// SlotItem слот комбинации
type SlotItem struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	FromHour string `json:"fromHour"`
	ToHour   string `json:"toHour"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAvailability.Response) *DayAvailabilityResponse {
	data := make([]BoatAvailabilityItem, 0, len(resp.Data))
	for _, boatAvailability := range resp.Data {
		photos := make([]PhotoItem, 0, len(boatAvailability.Boat.Photos))
		for _, photo := range boatAvailability.Boat.Photos {
			photos = append(photos, PhotoItem{URL: photo.URL, Description: photo.Description})
		}

		offers := make([]OfferItem, 0, len(boatAvailability.Availability))
		for _, offer := range boatAvailability.Availability {
			slots := make([]SlotItem, 0, len(offer.Slots))
			for _, slot := range offer.Slots {
				slots = append(slots, SlotItem{
					ID:       slot.ID,
					Position: slot.Position,
					FromHour: slot.FromHour.String(),
					ToHour:   slot.ToHour.String(),
				})
			}
			offers = append(offers, OfferItem{
				Slots:    slots,
				Price:    offer.Price.StringFixed(2),
				FromHour: offer.FromHour.String(),
				ToHour:   offer.ToHour.String(),
			})
		}

		data = append(data, BoatAvailabilityItem{
			Boat: BoatItem{
				ID:          boatAvailability.Boat.ID,
				Name:        boatAvailability.Boat.Name,
				Description: boatAvailability.Boat.Description,
				Photos:      photos,
			},
			Availability: offers,
		})
	}
	return &DayAvailabilityResponse{Error: resp.Error, Data: data}
}
