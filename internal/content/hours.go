package content

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"salonweb/internal/model"
)

var location = loadLocation(business.TimeZone)

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("CST", -6*60*60)
	}
	return loc
}

// Location returns the salon's time zone.
func Location() *time.Location { return location }

func hoursFor(day time.Weekday) model.DayHours {
	for _, h := range business.Hours {
		if h.Day == day {
			return h
		}
	}
	return model.DayHours{Day: day, Closed: true}
}

// IsOpenAt reports whether the salon is open at t.
func IsOpenAt(t time.Time) bool {
	local := t.In(Location())
	h := hoursFor(local.Weekday())
	if h.Closed {
		return false
	}
	m := local.Hour()*60 + local.Minute()
	return m >= h.Open && m < h.Close
}

// NextOpening returns the next time the salon opens strictly after t.
// It reports false only if every day is closed.
func NextOpening(t time.Time) (time.Time, bool) {
	loc := Location()
	local := t.In(loc)
	for i := 0; i <= 7; i++ {
		day := time.Date(local.Year(), local.Month(), local.Day()+i, 0, 0, 0, 0, loc)
		h := hoursFor(day.Weekday())
		if h.Closed {
			continue
		}
		// Wall-clock time, so DST change days keep the posted hours.
		open := time.Date(day.Year(), day.Month(), day.Day(), h.Open/60, h.Open%60, 0, 0, loc)
		if open.After(local) {
			return open, true
		}
	}
	return time.Time{}, false
}

// Status is a short human-readable open/closed line, e.g. "Open now until 7:00 PM".
func Status(t time.Time) string {
	local := t.In(Location())
	if IsOpenAt(local) {
		return "Open now until " + FormatMinutes(hoursFor(local.Weekday()).Close)
	}
	next, ok := NextOpening(local)
	if !ok {
		return "Closed"
	}
	if next.YearDay() == local.YearDay() && next.Year() == local.Year() {
		return "Closed now, opens at " + FormatMinutes(next.Hour()*60+next.Minute())
	}
	return fmt.Sprintf("Closed now, opens %s at %s", next.Weekday(), FormatMinutes(next.Hour()*60+next.Minute()))
}

// FormatMinutes renders minutes after midnight as a 12-hour clock time.
func FormatMinutes(m int) string {
	h, mm := m/60, m%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, mm, suffix)
}

// FormatDayHours renders one day's hours, e.g. "9:30 AM - 7:00 PM" or "Closed".
func FormatDayHours(h model.DayHours) string {
	if h.Closed {
		return "Closed"
	}
	return FormatMinutes(h.Open) + " - " + FormatMinutes(h.Close)
}

// FormatPrice renders a price in dollars. Starting prices get a trailing "+".
func FormatPrice(cents int, from bool) string {
	s := fmt.Sprintf("$%d", cents/100)
	if cents%100 != 0 {
		s = fmt.Sprintf("$%d.%02d", cents/100, cents%100)
	}
	if from {
		s += "+"
	}
	return s
}
