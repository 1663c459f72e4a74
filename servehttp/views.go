package servehttp

import (
	"time"
	"turnaround/domain"
	"turnaround/domain/order"
	"turnaround/domain/state"
	"turnaround/domain/tat"
)

type DurationView struct {
	Seconds int64  `json:"seconds"`
	Text    string `json:"text"`
}

func NewDurationView(d time.Duration) DurationView {
	return DurationView{Seconds: int64(d / time.Second), Text: d.String()}
}

type BlockView struct {
	EntryStatus    state.OrderStatus `json:"entryStatus"`
	Closed         bool              `json:"closed"`
	Entry          string            `json:"entry,omitempty"`
	EffectiveStart string            `json:"effectiveStart,omitempty"`
	Exit           string            `json:"exit,omitempty"`
	Gross          DurationView      `json:"gross"`
	Parked         DurationView      `json:"parked"`
	Net            DurationView      `json:"net"`
}

type TeamReportView struct {
	TeamName      string       `json:"teamName"`
	Net           DurationView `json:"net"`
	BusinessHours DurationView `json:"businessHours"`
	Blocks        []BlockView  `json:"blocks"`
}

type ReportView struct {
	OrderID   string           `json:"orderId"`
	Overall   DurationView     `json:"overall"`
	Review    DurationView     `json:"review"`
	Execution DurationView     `json:"execution"`
	Teams     []TeamReportView `json:"teams"`
}

type TeamView struct {
	TeamName   string                 `json:"teamName"`
	StartTime  string                 `json:"startTime"`
	CutoffTime string                 `json:"cutoffTime"`
	Zone       string                 `json:"zone"`
	Blocks     []domain.ActivityBlock `json:"blocks"`
}

type TransitionRecordView struct {
	ID         string            `json:"id"`
	OrderID    string            `json:"orderId"`
	Status     state.OrderStatus `json:"status"`
	ChangeTime string            `json:"changeTime"`
}

func localDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return domain.FormatLocalDateTime(t)
}

func NewTeamReportView(r *tat.TeamReport) TeamReportView {
	v := TeamReportView{
		TeamName:      r.TeamName,
		Net:           NewDurationView(r.Net),
		BusinessHours: NewDurationView(r.BusinessHours),
		Blocks:        make([]BlockView, 0, len(r.Blocks)),
	}
	for _, b := range r.Blocks {
		v.Blocks = append(v.Blocks, BlockView{
			EntryStatus:    b.EntryStatus,
			Closed:         b.Closed,
			Entry:          localDateTime(b.Entry),
			EffectiveStart: localDateTime(b.EffectiveStart),
			Exit:           localDateTime(b.Exit),
			Gross:          NewDurationView(b.Gross),
			Parked:         NewDurationView(b.Parked),
			Net:            NewDurationView(b.Net),
		})
	}
	return v
}

func NewReportView(r *tat.Report) ReportView {
	v := ReportView{
		OrderID:   r.OrderID,
		Overall:   NewDurationView(r.Overall),
		Review:    NewDurationView(r.Review),
		Execution: NewDurationView(r.Execution),
		Teams:     make([]TeamReportView, 0, len(r.Teams)),
	}
	for i := range r.Teams {
		v.Teams = append(v.Teams, NewTeamReportView(&r.Teams[i]))
	}
	return v
}

func NewTeamView(c domain.TeamConfig) TeamView {
	return TeamView{
		TeamName:   c.TeamName,
		StartTime:  c.Hours.Start.String(),
		CutoffTime: c.Hours.Cutoff.String(),
		Zone:       c.Hours.Zone,
		Blocks:     c.Blocks,
	}
}

func NewTransitionRecordView(r *order.TransitionRecord) TransitionRecordView {
	return TransitionRecordView{
		ID:         r.ID.String(),
		OrderID:    r.OrderID,
		Status:     r.Status,
		ChangeTime: localDateTime(r.ChangeTime),
	}
}
