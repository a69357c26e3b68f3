package create_booking

import (
	"crypto/rand"
	"fmt"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// символы без визуально похожих пар вроде O/0 и I/1
const locatorAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateLocator создает короткий человекочитаемый код бронирования
func generateLocator() (string, error) {
	buf := make([]byte, domain.LocatorLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: failed to generate locator: %v", ErrInternal, err)
	}
	for i, b := range buf {
		buf[i] = locatorAlphabet[int(b)%len(locatorAlphabet)]
	}
	return string(buf), nil
}
