package calendar

import (
	"strings"
	"time"
)

// Weekday is a training day. The club trains Monday to Saturday; Sunday is
// not modeled.
type Weekday string

const (
	Monday    Weekday = "lunes"
	Tuesday   Weekday = "martes"
	Wednesday Weekday = "miercoles"
	Thursday  Weekday = "jueves"
	Friday    Weekday = "viernes"
	Saturday  Weekday = "sabado"
)

var weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func Weekdays() []Weekday {
	return append([]Weekday{}, weekdays...)
}

func (w Weekday) String() string {
	return string(w)
}

func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	default:
		return false
	}
}

// ParseWeekday accepts the day name case-insensitively, with or without
// accents ("miércoles", "sábado").
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("é", "e", "á", "a").Replace(s)
	w := Weekday(s)
	return w, w.IsValid()
}

// WeekdayFromIndex maps 0 (Sunday) .. 6 (Saturday); Sunday reports false.
func WeekdayFromIndex(idx int) (Weekday, bool) {
	if idx < 1 || idx > 6 {
		return "", false
	}
	return weekdays[idx-1], true
}

func WeekdayFromTime(t time.Time) (Weekday, bool) {
	return WeekdayFromIndex(int(t.Weekday()))
}

// TrainingDayToday resolves today's training day, showing Saturday's plan
// on Sundays.
func (c *Calendar) TrainingDayToday() Weekday {
	if day, ok := WeekdayFromIndex(c.WeekdayIndexToday()); ok {
		return day
	}
	return Saturday
}
