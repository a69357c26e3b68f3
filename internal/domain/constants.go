package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default day definition values
const (
	DefaultFirstTime    = "09:00"
	DefaultHoursPerSlot = 2
)

// Business validation constants
const (
	MinHoursPerSlot        = 1
	MaxHoursPerSlot        = 24
	MaxCustomerNameLength  = 100
	MaxTelephoneLength     = 100
	MaxExtrasLength        = 500
	MaxPromocodeNameLength = 20
	LocatorLength          = 10
)
