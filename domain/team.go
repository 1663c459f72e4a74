package domain

import (
	"fmt"
	"sort"
	"turnaround/domain/calendar"
	"turnaround/domain/state"
)

// ActivityBlock is one ownership window of a team. The block starts at the
// first occurrence of EntryStatus; FirstInProgressStatus marks when work
// actually begins.
type ActivityBlock struct {
	Statuses              []state.OrderStatus `json:"statuses"`
	EntryStatus           state.OrderStatus   `json:"entryStatus"`
	FirstInProgressStatus state.OrderStatus   `json:"firstInProgressStatus"`
}

func (b ActivityBlock) Contains(s state.OrderStatus) bool {
	for _, owned := range b.Statuses {
		if owned == s {
			return true
		}
	}
	return false
}

func (b ActivityBlock) clone() ActivityBlock {
	c := b
	c.Statuses = append([]state.OrderStatus(nil), b.Statuses...)
	return c
}

type TeamConfig struct {
	TeamName string                 `json:"teamName"`
	Blocks   []ActivityBlock        `json:"blocks"`
	Hours    calendar.BusinessHours `json:"-"`
}

// Owns reports whether any block of the team contains s.
func (c TeamConfig) Owns(s state.OrderStatus) bool {
	for _, b := range c.Blocks {
		if b.Contains(s) {
			return true
		}
	}
	return false
}

func (c TeamConfig) Validate() error {
	if c.TeamName == "" {
		return fmt.Errorf("%w: team name is empty", ErrInvalidTeamConfig)
	}
	if err := c.Hours.Validate(); err != nil {
		return fmt.Errorf("%w: team %s: %v", ErrInvalidTeamConfig, c.TeamName, err)
	}
	if len(c.Blocks) == 0 {
		return fmt.Errorf("%w: team %s has no activity blocks", ErrInvalidTeamConfig, c.TeamName)
	}

	owner := map[state.OrderStatus]int{}
	for i, b := range c.Blocks {
		if len(b.Statuses) == 0 {
			return fmt.Errorf("%w: team %s block %d has no statuses", ErrInvalidTeamConfig, c.TeamName, i)
		}
		for _, s := range b.Statuses {
			if !s.Known() {
				return fmt.Errorf("%w: team %s block %d: %v: %q", ErrInvalidTeamConfig, c.TeamName, i, state.ErrUnknownStatus, s)
			}
			if other, found := owner[s]; found && other != i {
				return fmt.Errorf("%w: team %s: status %s is owned by blocks %d and %d", ErrInvalidTeamConfig, c.TeamName, s, other, i)
			}
			owner[s] = i
		}
		if !b.Contains(b.EntryStatus) {
			return fmt.Errorf("%w: team %s block %d: entry status %q is not in the block", ErrInvalidTeamConfig, c.TeamName, i, b.EntryStatus)
		}
		if !b.Contains(b.FirstInProgressStatus) {
			return fmt.Errorf("%w: team %s block %d: first in-progress status %q is not in the block", ErrInvalidTeamConfig, c.TeamName, i, b.FirstInProgressStatus)
		}
	}
	return nil
}

func (c TeamConfig) clone() TeamConfig {
	r := c
	r.Blocks = make([]ActivityBlock, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		r.Blocks = append(r.Blocks, b.clone())
	}
	return r
}

// TeamRegistry is an immutable set of team configurations keyed by team name.
// It is safe for concurrent use.
type TeamRegistry struct {
	teams map[string]TeamConfig
}

func NewTeamRegistry(configs ...TeamConfig) (TeamRegistry, error) {
	teams := make(map[string]TeamConfig, len(configs))
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			return TeamRegistry{}, err
		}
		if _, found := teams[c.TeamName]; found {
			return TeamRegistry{}, fmt.Errorf("%w: duplicated team %s", ErrInvalidTeamConfig, c.TeamName)
		}
		teams[c.TeamName] = c.clone()
	}
	return TeamRegistry{teams: teams}, nil
}

// Lookup returns a copy of the named team's configuration.
func (r TeamRegistry) Lookup(teamName string) (TeamConfig, error) {
	c, found := r.teams[teamName]
	if !found {
		return TeamConfig{}, fmt.Errorf("%w: %s", ErrUnknownTeam, teamName)
	}
	return c.clone(), nil
}

func (r TeamRegistry) Names() []string {
	names := make([]string, 0, len(r.teams))
	for name := range r.teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r TeamRegistry) Len() int {
	return len(r.teams)
}
