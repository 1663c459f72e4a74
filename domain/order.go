package domain

import (
	"sort"
	"time"
	"turnaround/domain/state"
)

// LocalDateTimeLayout is the wire format of naive local date-times. The
// fraction is optional and printed only when non-zero, so parsed values format
// back unchanged.
const LocalDateTimeLayout = "2006-01-02T15:04:05.999999999"

// StatusTransition records that an order entered Status at ChangeTime.
// ChangeTime is a naive local date-time: only its wall-clock fields matter.
type StatusTransition struct {
	Status     state.OrderStatus `json:"status"`
	ChangeTime time.Time         `json:"changeTime"`
}

type Order struct {
	OrderID     string             `json:"orderId"`
	Transitions []StatusTransition `json:"transitions"`
}

// SortedTransitions returns the transitions ordered by change time. Transitions
// sharing a change time keep their recorded order. The order itself is left
// untouched.
func (o *Order) SortedTransitions() []StatusTransition {
	if o == nil || len(o.Transitions) == 0 {
		return nil
	}
	sorted := make([]StatusTransition, len(o.Transitions))
	copy(sorted, o.Transitions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChangeTime.Before(sorted[j].ChangeTime)
	})
	return sorted
}

// ParseLocalDateTime parses a naive local date-time, fractional seconds allowed.
func ParseLocalDateTime(value string) (time.Time, error) {
	return time.ParseInLocation(LocalDateTimeLayout, value, time.UTC)
}

func FormatLocalDateTime(t time.Time) string {
	return t.Format(LocalDateTimeLayout)
}

// NaiveTime keeps the wall clock of t and drops its zone.
func NaiveTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
