package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	timeStringFormat = "15:04"
	minutesPerDay    = 24 * 60
)

// TimeString время суток в формате HH:MM (например, "10:00")
// Используется для времени начала/конца слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString парсит строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeStringFormat, s); err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}
	return TimeString(s), nil
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %q", t)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время через m минут
// Переход через полночь заворачивается по модулю 24 часов
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := (minutes + m) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// AddHours возвращает время через h часов
func (t TimeString) AddHours(h int) (TimeString, error) {
	return t.AddMinutes(h * 60)
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются равными (false)
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

// Scan реализует sql.Scanner (поддержка TIME и VARCHAR колонок)
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types.TimeString: unsupported scan type %T", value)
	}
}

func (t *TimeString) scanString(s string) error {
	// Postgres TIME приходит как "10:00:00"
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
