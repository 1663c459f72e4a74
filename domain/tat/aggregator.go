package tat

import (
	"time"
	"turnaround/common"
	"turnaround/domain"
	"turnaround/domain/calendar"
	"turnaround/domain/state"

	"github.com/sirupsen/logrus"
)

// Aggregator derives turn-around times from the transition history of an
// order. It never mutates the orders it is given and is safe for concurrent use.
type Aggregator struct {
	teams domain.TeamRegistry
}

func NewAggregator(teams domain.TeamRegistry) *Aggregator {
	return &Aggregator{teams: teams}
}

// BlockTat is the accounting of one activity block of a team.
type BlockTat struct {
	EntryStatus state.OrderStatus
	// Closed is false when the block was never entered or never left.
	Closed         bool
	Entry          time.Time
	EffectiveStart time.Time
	Exit           time.Time
	Gross          time.Duration
	Parked         time.Duration
	Net            time.Duration
}

func (a *Aggregator) OverallTat(order *domain.Order) time.Duration {
	return a.MilestoneTat(order, state.Draft, state.Completed)
}

func (a *Aggregator) ReviewTat(order *domain.Order) time.Duration {
	return a.MilestoneTat(order, state.Submitted, state.Started)
}

func (a *Aggregator) ExecutionTat(order *domain.Order) time.Duration {
	return a.MilestoneTat(order, state.Started, state.Completed)
}

// MilestoneTat is the wall-clock time from the first occurrence of startMarker
// to the last occurrence of endMarker. Missing markers, or an end before the
// start, yield zero.
func (a *Aggregator) MilestoneTat(order *domain.Order, startMarker, endMarker state.OrderStatus) time.Duration {
	var start, end time.Time
	startFound, endFound := false, false
	for _, t := range order.SortedTransitions() {
		if t.Status == startMarker && !startFound {
			start, startFound = t.ChangeTime, true
		}
		if t.Status == endMarker {
			end, endFound = t.ChangeTime, true
		}
	}
	if !startFound || !endFound || end.Before(start) {
		return 0
	}
	return end.Sub(start)
}

// TeamTat is the net working time of a team: the sum of the net durations of
// each of its activity blocks.
func (a *Aggregator) TeamTat(order *domain.Order, teamName string) (time.Duration, error) {
	blocks, err := a.BlockTats(order, teamName)
	if err != nil {
		return 0, err
	}
	var total time.Duration
	for _, b := range blocks {
		total += b.Net
	}
	return total, nil
}

// BlockTats evaluates every activity block of the team independently.
func (a *Aggregator) BlockTats(order *domain.Order, teamName string) ([]BlockTat, error) {
	team, err := a.teams.Lookup(teamName)
	if err != nil {
		return nil, err
	}

	transitions := order.SortedTransitions()
	results := make([]BlockTat, 0, len(team.Blocks))
	for _, block := range team.Blocks {
		r := evaluateBlock(transitions, block, team.Hours)
		if !r.Closed && order != nil {
			common.Log.WithFields(logrus.Fields{
				"orderId": order.OrderID, "team": team.TeamName, "entryStatus": block.EntryStatus,
			}).Debug("activity block not closed")
		}
		results = append(results, r)
	}
	return results, nil
}

// BusinessHoursTeamTat bounds the team's time to business hours instead of
// netting out parked intervals from wall-clock time: every non-parked
// transition into a status the team owns accrues business hours until the
// next transition.
func (a *Aggregator) BusinessHoursTeamTat(order *domain.Order, teamName string) (time.Duration, error) {
	team, err := a.teams.Lookup(teamName)
	if err != nil {
		return 0, err
	}

	transitions := order.SortedTransitions()
	var total time.Duration
	for i := 0; i+1 < len(transitions); i++ {
		current := transitions[i]
		if current.Status.IsParked() || !team.Owns(current.Status) {
			continue
		}
		total += calendar.CalculateDuration(current.ChangeTime, transitions[i+1].ChangeTime, team.Hours)
	}
	return total, nil
}

func evaluateBlock(transitions []domain.StatusTransition, block domain.ActivityBlock, hours calendar.BusinessHours) BlockTat {
	r := BlockTat{EntryStatus: block.EntryStatus}

	entryIdx := -1
	for i, t := range transitions {
		if t.Status == block.EntryStatus && block.Contains(t.Status) {
			entryIdx = i
			break
		}
	}
	if entryIdx < 0 {
		return r
	}
	r.Entry = transitions[entryIdx].ChangeTime

	exitIdx := entryIdx + 1
	for exitIdx < len(transitions) && block.Contains(transitions[exitIdx].Status) {
		exitIdx++
	}
	if exitIdx >= len(transitions) {
		return r
	}

	r.Closed = true
	r.Exit = transitions[exitIdx].ChangeTime
	r.EffectiveStart = effectiveStart(transitions[entryIdx:exitIdx], block, hours)
	if r.Exit.After(r.EffectiveStart) {
		r.Gross = r.Exit.Sub(r.EffectiveStart)
	}
	r.Parked = parkedWithin(transitions, r.EffectiveStart, r.Exit)
	if r.Gross > r.Parked {
		r.Net = r.Gross - r.Parked
	}
	return r
}

// effectiveStart defers an entry made after cutoff to the next business day,
// unless work on the block had already begun before that.
func effectiveStart(owned []domain.StatusTransition, block domain.ActivityBlock, hours calendar.BusinessHours) time.Time {
	entry := owned[0].ChangeTime
	if calendar.ClockOf(entry) <= hours.Cutoff {
		return entry
	}

	next := calendar.NextBusinessDayStart(entry.AddDate(0, 0, 1), hours)
	for _, t := range owned {
		if t.Status == block.FirstInProgressStatus {
			if t.ChangeTime.Before(next) {
				return t.ChangeTime
			}
			break
		}
	}
	return next
}

// parkedWithin sums the parked intervals of the whole history clipped to [from, to].
func parkedWithin(transitions []domain.StatusTransition, from, to time.Time) time.Duration {
	var total time.Duration
	for i := 0; i+1 < len(transitions); i++ {
		if !transitions[i].Status.IsParked() {
			continue
		}
		start, end := transitions[i].ChangeTime, transitions[i+1].ChangeTime
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if end.After(start) {
			total += end.Sub(start)
		}
	}
	return total
}
