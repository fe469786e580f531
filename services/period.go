package services

import (
	"errors"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

var ErrInvalidRange = errors.New("start date is after end date")

// DayRange is an inclusive range of whole days; a nil bound is open.
type DayRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDayRange -> start at 00:00:00 and end at 23:59:59.999 of the given days in loc.
func ParseDayRange(start, end string, loc *time.Location) (DayRange, error) {
	var r DayRange
	if start != "" {
		d, err := time.ParseInLocation(dayLayout, start, loc)
		if err != nil {
			return r, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", start)
		}
		r.From = &d
	}
	if end != "" {
		d, err := time.ParseInLocation(dayLayout, end, loc)
		if err != nil {
			return r, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", end)
		}
		d = endOfDay(d)
		r.To = &d
	}
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return r, ErrInvalidRange
	}
	return r, nil
}

// LastDays -> the range covering today and the days before it.
func LastDays(days int, now time.Time) DayRange {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -days)
	to := endOfDay(today)
	return DayRange{From: &from, To: &to}
}

// WithDefaults fills open bounds from def.
func (r DayRange) WithDefaults(def DayRange) DayRange {
	if r.From == nil {
		r.From = def.From
	}
	if r.To == nil {
		r.To = def.To
	}
	return r
}

func endOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, int(999*time.Millisecond), d.Location())
}
