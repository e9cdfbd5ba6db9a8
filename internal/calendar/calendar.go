// Package calendar holds the date handling shared by every training module.
// All dates travel as YYYY-MM-DD strings in the club's region timezone; such
// strings sort chronologically, and range checks elsewhere rely on that.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	// DefaultRegion is the timezone the club operates in.
	DefaultRegion = "America/Argentina/Buenos_Aires"
)

var ErrInvalidDate = errors.New("invalid date")

type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func New(loc *time.Location) *Calendar {
	return NewWithClock(loc, time.Now)
}

func NewWithClock(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{
		loc: loc,
		now: now,
	}
}

// LoadRegion resolves a timezone name, falling back to a fixed UTC-3 zone when
// the host has no tz database (slim containers).
func LoadRegion(name string) *time.Location {
	if name == "" {
		name = DefaultRegion
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, -3*60*60)
	}
	return loc
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Today returns the current date in the region timezone, regardless of the
// host's local zone.
func (c *Calendar) Today() string {
	return c.now().In(c.loc).Format(DateLayout)
}

// WeekdayIndexToday is 0 for Sunday through 6 for Saturday.
func (c *Calendar) WeekdayIndexToday() int {
	return int(c.now().In(c.loc).Weekday())
}

// ParseDate parses a YYYY-MM-DD string as a calendar date anchored at UTC
// midnight, so day arithmetic never crosses a DST or offset boundary.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w [%s]", ErrInvalidDate, date)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func IsValidDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns to - from in whole days (negative when to is earlier).
// It counts in Unix seconds, since time.Duration saturates past ~292 years.
func DaysBetween(from, to string) (int, error) {
	fromT, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	toT, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	return int((toT.Unix() - fromT.Unix()) / secondsPerDay), nil
}

func AddDays(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

// EnumerateDates lists every date from..to, both inclusive. An inverted range
// yields an empty list.
func EnumerateDates(from, to string) ([]string, error) {
	fromT, err := ParseDate(from)
	if err != nil {
		return nil, err
	}
	toT, err := ParseDate(to)
	if err != nil {
		return nil, err
	}

	dates := []string{}
	for d := fromT; !d.After(toT); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates, nil
}

// InRange reports whether date lies within [from, to]. Plain string
// comparison is enough for the canonical layout.
func InRange(date, from, to string) bool {
	return date >= from && date <= to
}
