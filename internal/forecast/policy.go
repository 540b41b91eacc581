package forecast

import (
	"fmt"
	"time"
)

// Line is a single forecast slot ready for rendering: the wall-clock time it
// is displayed at plus whatever the entry carried.
type Line struct {
	Time        time.Time
	Code        *CodeValue
	Temperature *float64
}

// Section groups lines under one message heading.
type Section struct {
	Title string
	Lines []Line
}

// Policy decides which forecast entries make it into the message and which
// wall-clock hour each one is displayed at. Feed entries carry no usable
// timestamps, so hours are assigned positionally from "now".
type Policy interface {
	Name() string
	Plan(entries []WeatherEntry, now time.Time) []Section
}

// nightHours are the fixed evening slots used when the day is not over yet.
// The final slot falls past midnight, on tomorrow's date.
var nightHours = [4]int{19, 21, 23, 1}

// DayNightPolicy lays the message out as an afternoon section (hourly slots
// on today's date up to 18:00) followed by a night section (19:00 through the
// early hours of tomorrow). This is the default policy.
type DayNightPolicy struct{}

func (DayNightPolicy) Name() string { return "siang-malam" }

func (DayNightPolicy) Plan(entries []WeatherEntry, now time.Time) []Section {
	day := Section{Title: "Prakiraan Cuaca Siang Hari"}
	night := Section{Title: "Prakiraan Cuaca Malam Hari"}

	dayCount := min(8, len(entries))
	for i := 0; i < dayCount; i++ {
		at := truncateToHour(now.Add(time.Duration(i+1) * time.Hour))
		if !sameDate(at, now) || at.Hour() > 18 {
			continue
		}
		day.Lines = append(day.Lines, newLine(entries[i], at))
	}

	// Night slots continue where the day window stopped indexing, even when
	// the day window kept fewer than 8 entries.
	nightCount := min(4, len(entries))
	for i := 0; i < nightCount; i++ {
		idx := i + dayCount
		if idx >= len(entries) {
			break
		}

		var at time.Time
		if now.Hour() < 19 {
			hour := nightHours[i]
			base := now
			if hour < 6 {
				base = now.AddDate(0, 0, 1)
			}
			at = time.Date(base.Year(), base.Month(), base.Day(), hour, 0, 0, 0, now.Location())
		} else {
			// The evening is already under way: step two hours at a time
			// starting one hour ahead.
			at = truncateToHour(now.Add(time.Duration(2*i+1) * time.Hour))
		}
		night.Lines = append(night.Lines, newLine(entries[idx], at))
	}

	return []Section{day, night}
}

// SingleDayPolicy lays the remaining hours of today out as one flat section,
// spreading the available entries evenly across them. Alternative to
// DayNightPolicy, selectable through configuration.
type SingleDayPolicy struct{}

func (SingleDayPolicy) Name() string { return "hari-ini" }

func (SingleDayPolicy) Plan(entries []WeatherEntry, now time.Time) []Section {
	today := Section{Title: "Prakiraan Cuaca Hari Ini"}

	hoursLeft := 24 - now.Hour()
	count := min(8, hoursLeft, len(entries))
	if count > 0 {
		interval := hoursLeft / count
		if interval < 1 {
			interval = 1
		}
		for i := 0; i < count; i++ {
			at := truncateToHour(now.Add(time.Duration(i*interval+1) * time.Hour))
			if !sameDate(at, now) {
				continue
			}
			today.Lines = append(today.Lines, newLine(entries[i], at))
		}
	}

	return []Section{today}
}

// PolicyByName returns the policy registered under name.
func PolicyByName(name string) (Policy, error) {
	for _, p := range []Policy{DayNightPolicy{}, SingleDayPolicy{}} {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown forecast policy %q", name)
}

func newLine(e WeatherEntry, at time.Time) Line {
	return Line{Time: at, Code: e.Weather, Temperature: e.ResolveTemperature()}
}

// truncateToHour zeroes minutes and smaller in wall-clock terms.
func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
