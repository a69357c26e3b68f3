package get_month_availability

import (
	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// aggregateDayType сводит типы доступности всех лодок к одному типу дня:
//  1. пустой список лодок дает NO_AVAILABILITY
//  2. если все лодки сообщили один и тот же тип, он и становится общим
//  3. иначе хоть одна свободная или частично свободная лодка
//     дает PARTIALLY_FREE
//  4. оставшаяся смесь FULL и NO_AVAILABILITY дает FULL
func aggregateDayType(boatTypes []domain.DayAvailabilityType) domain.DayAvailabilityType {
	if len(boatTypes) == 0 {
		return domain.DayNoAvailability
	}

	allSame := true
	for _, t := range boatTypes[1:] {
		if t != boatTypes[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return boatTypes[0]
	}

	for _, t := range boatTypes {
		if t == domain.DayFree || t == domain.DayPartiallyFree {
			return domain.DayPartiallyFree
		}
	}

	return domain.DayFull
}

// isDisabled отмечает дни, которые нельзя выбрать в календаре
func isDisabled(dayType domain.DayAvailabilityType) bool {
	return dayType == domain.DayNoAvailability || dayType == domain.DayFull
}
