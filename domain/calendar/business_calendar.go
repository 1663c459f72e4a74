package calendar

import (
	"errors"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock offset since midnight.
type TimeOfDay time.Duration

// BusinessHours is the working window of a team. Zone names the calendar the
// team works in; timestamps handed to this package are already wall-clock
// values of that calendar, so the zone never shifts them.
type BusinessHours struct {
	Start  TimeOfDay
	Cutoff TimeOfDay
	Zone   string
}

func At(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return ClockOf(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", value)
}

// ClockOf returns the time of day of t.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond()))
}

// On returns this time of day on the date of day, in day's location.
func (d TimeOfDay) On(day time.Time) time.Time {
	y, m, dd := day.Date()
	rest := time.Duration(d)
	hour := rest / time.Hour
	rest -= hour * time.Hour
	minute := rest / time.Minute
	rest -= minute * time.Minute
	second := rest / time.Second
	rest -= second * time.Second
	return time.Date(y, m, dd, int(hour), int(minute), int(second), int(rest), day.Location())
}

func (d TimeOfDay) String() string {
	t := d.On(time.Time{})
	if t.Second() != 0 {
		return t.Format("15:04:05")
	}
	return t.Format("15:04")
}

func (h BusinessHours) Validate() error {
	if h.Start < 0 || h.Cutoff >= TimeOfDay(24*time.Hour) {
		return errors.New("business hours must lie within one day")
	}
	if h.Start >= h.Cutoff {
		return fmt.Errorf("start time %s must be before cutoff time %s", h.Start, h.Cutoff)
	}
	if _, err := time.LoadLocation(h.Zone); err != nil {
		return fmt.Errorf("unknown zone %q", h.Zone)
	}
	return nil
}

// IsWeekend reports whether the date of t is a Saturday or a Sunday.
func IsWeekend(t time.Time) bool {
	day := t.Weekday()
	return day == time.Saturday || day == time.Sunday
}

// NextBusinessDayStart returns the start of business on the first non-weekend
// date on or after the date of date.
func NextBusinessDayStart(date time.Time, hours BusinessHours) time.Time {
	day := date
	for IsWeekend(day) {
		day = day.AddDate(0, 0, 1)
	}
	return hours.Start.On(day)
}

// AdjustStart moves start forward to the first instant inside business hours:
// after cutoff goes to the next business day, before start time to the start
// of the same (or next business) day, a weekend to the next business day.
func AdjustStart(start time.Time, hours BusinessHours) time.Time {
	clock := ClockOf(start)
	switch {
	case clock > hours.Cutoff:
		return NextBusinessDayStart(start.AddDate(0, 0, 1), hours)
	case clock < hours.Start:
		if IsWeekend(start) {
			return NextBusinessDayStart(start, hours)
		}
		return hours.Start.On(start)
	case IsWeekend(start):
		return NextBusinessDayStart(start, hours)
	}
	return start
}

// CalculateDuration returns the time inside business hours in [start, end).
// Zero timestamps, start after end, or a start adjusted past end all yield zero.
func CalculateDuration(start, end time.Time, hours BusinessHours) time.Duration {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return 0
	}

	effectiveStart := AdjustStart(start, hours)
	if effectiveStart.After(end) {
		return 0
	}
	return businessDuration(effectiveStart, end, hours)
}

func businessDuration(start, end time.Time, hours BusinessHours) time.Duration {
	var total time.Duration
	current := start

	for current.Before(end) {
		nextDayStart := hours.Start.On(current.AddDate(0, 0, 1))
		if IsWeekend(current) {
			current = nextDayStart
			continue
		}

		clock := ClockOf(current)
		if clock > hours.Cutoff {
			current = nextDayStart
			continue
		}
		if clock < hours.Start {
			current = hours.Start.On(current)
		}

		intervalEnd := hours.Cutoff.On(current)
		if sameDate(end, current) && ClockOf(end) < hours.Cutoff {
			intervalEnd = end
		}
		if current.Before(intervalEnd) {
			total += intervalEnd.Sub(current)
		}

		current = nextDayStart
	}

	return total
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
