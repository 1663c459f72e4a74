package tat

import (
	"time"
	"turnaround/domain"
)

type TeamReport struct {
	TeamName      string
	Net           time.Duration
	BusinessHours time.Duration
	Blocks        []BlockTat
}

// Report gathers every turn-around figure of one order.
type Report struct {
	OrderID   string
	Overall   time.Duration
	Review    time.Duration
	Execution time.Duration
	Teams     []TeamReport
}

// Clone returns a copy sharing no slices with r.
func (r TeamReport) Clone() TeamReport {
	c := r
	if r.Blocks != nil {
		c.Blocks = append([]BlockTat(nil), r.Blocks...)
	}
	return c
}

// Clone returns a copy sharing no slices with r.
func (r Report) Clone() Report {
	c := r
	if r.Teams != nil {
		c.Teams = make([]TeamReport, 0, len(r.Teams))
		for _, t := range r.Teams {
			c.Teams = append(c.Teams, t.Clone())
		}
	}
	return c
}

func (a *Aggregator) TeamReport(order *domain.Order, teamName string) (TeamReport, error) {
	blocks, err := a.BlockTats(order, teamName)
	if err != nil {
		return TeamReport{}, err
	}
	businessHours, err := a.BusinessHoursTeamTat(order, teamName)
	if err != nil {
		return TeamReport{}, err
	}

	r := TeamReport{TeamName: teamName, BusinessHours: businessHours, Blocks: blocks}
	for _, b := range blocks {
		r.Net += b.Net
	}
	return r, nil
}

// Report computes the milestone figures and a team report for every
// registered team, in team name order.
func (a *Aggregator) Report(order *domain.Order) Report {
	r := Report{
		Overall:   a.OverallTat(order),
		Review:    a.ReviewTat(order),
		Execution: a.ExecutionTat(order),
		Teams:     []TeamReport{},
	}
	if order != nil {
		r.OrderID = order.OrderID
	}

	for _, name := range a.teams.Names() {
		// names come from the registry itself, lookup cannot fail
		teamReport, _ := a.TeamReport(order, name)
		r.Teams = append(r.Teams, teamReport)
	}
	return r
}

// Teams returns the registry the aggregator computes against.
func (a *Aggregator) Teams() domain.TeamRegistry {
	return a.teams
}
