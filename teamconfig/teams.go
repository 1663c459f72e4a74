package teamconfig

import (
	"turnaround/domain"
	"turnaround/domain/calendar"
	"turnaround/domain/state"
)

const (
	TeamAuditReview = "AUDIT_REVIEW"
	TeamTrading     = "TRADING"
)

// DefaultTeams is used when no team configuration file is given. Audit review
// owns the review levels and, separately, the credit approval levels; the
// approved statuses hand the order over and belong to nobody.
func DefaultTeams() []domain.TeamConfig {
	hours := calendar.BusinessHours{Start: calendar.At(9, 0), Cutoff: calendar.At(17, 0), Zone: "UTC"}
	return []domain.TeamConfig{{
		TeamName: TeamAuditReview,
		Hours:    hours,
		Blocks: []domain.ActivityBlock{{
			Statuses: []state.OrderStatus{
				state.AuditReviewLevel1Open, state.AuditReviewLevel1InProgress, state.AuditReviewLevel1Parked, state.AuditReviewLevel1Submitted,
				state.AuditReviewLevel2Open, state.AuditReviewLevel2InProgress, state.AuditReviewLevel2Parked,
			},
			EntryStatus:           state.AuditReviewLevel1Open,
			FirstInProgressStatus: state.AuditReviewLevel1InProgress,
		}, {
			Statuses: []state.OrderStatus{
				state.CreditApprovalLevel1Open, state.CreditApprovalLevel1InProgress, state.CreditApprovalLevel1Parked, state.CreditApprovalLevel1Submitted,
				state.CreditApprovalLevel2Open, state.CreditApprovalLevel2InProgress, state.CreditApprovalLevel2Parked,
			},
			EntryStatus:           state.CreditApprovalLevel1Open,
			FirstInProgressStatus: state.CreditApprovalLevel1InProgress,
		}},
	}, {
		TeamName: TeamTrading,
		Hours:    hours,
		Blocks: []domain.ActivityBlock{{
			Statuses:              state.InFamily(state.TradingFamily),
			EntryStatus:           state.TradingOpen,
			FirstInProgressStatus: state.TradingInProgress,
		}},
	}}
}

func DefaultRegistry() domain.TeamRegistry {
	r, err := domain.NewTeamRegistry(DefaultTeams()...)
	if err != nil {
		panic(err)
	}
	return r
}
