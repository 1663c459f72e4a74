package state

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown status")

// OrderStatus is a named step of the order workflow.
type OrderStatus string

// Family groups the statuses that one kind of activity moves through.
type Family string

const (
	NoFamily             Family = ""
	AuditReviewFamily    Family = "AUDIT_REVIEW"
	CreditApprovalFamily Family = "AUDIT_REVIEW_CREDIT_APPROVAL"
	TradingFamily        Family = "TRADING"
)

const (
	Draft     OrderStatus = "DRAFT"
	Submitted OrderStatus = "SUBMITTED"
	Started   OrderStatus = "STARTED"

	AuditReviewLevel1Open       OrderStatus = "AUDIT_REVIEW_LEVEL1_OPEN"
	AuditReviewLevel1InProgress OrderStatus = "AUDIT_REVIEW_LEVEL1_IN_PROGRESS"
	AuditReviewLevel1Parked     OrderStatus = "AUDIT_REVIEW_LEVEL1_PARKED"
	AuditReviewLevel1Submitted  OrderStatus = "AUDIT_REVIEW_LEVEL1_SUBMITTED"
	AuditReviewLevel2Open       OrderStatus = "AUDIT_REVIEW_LEVEL2_OPEN"
	AuditReviewLevel2InProgress OrderStatus = "AUDIT_REVIEW_LEVEL2_IN_PROGRESS"
	AuditReviewLevel2Parked     OrderStatus = "AUDIT_REVIEW_LEVEL2_PARKED"
	AuditReviewLevel2Approved   OrderStatus = "AUDIT_REVIEW_LEVEL2_APPROVED"

	CreditApprovalLevel1Open       OrderStatus = "AUDIT_REVIEW_CREDIT_APPROVAL_LEVEL1_OPEN"
	CreditApprovalLevel1InProgress OrderStatus = "AUDIT_REVIEW_CREDIT_APPROVAL_LEVEL1_IN_PROGRESS"
	CreditApprovalLevel1Parked     OrderStatus = "AUDIT_REVIEW_CREDIT_APPROVAL_LEVEL1_PARKED"
	CreditApprovalLevel1Submitted  OrderStatus = "AUDIT_REVIEW_CREDIT_APPROVAL_LEVEL1_SUBMITTED"
	CreditApprovalLevel2Open       OrderStatus = "AUDIT_REVIEW_CREDIT_APPROVAL_LEVEL2_OPEN"
	CreditApprovalLevel2InProgress OrderStatus = "AUDIT_REVIEW_CREDIT_APPROVAL_LEVEL2_IN_PROGRESS"
	CreditApprovalLevel2Parked     OrderStatus = "AUDIT_REVIEW_CREDIT_APPROVAL_LEVEL2_PARKED"
	CreditApprovalLevel2Approved   OrderStatus = "AUDIT_REVIEW_CREDIT_APPROVAL_LEVEL2_APPROVED"

	TradingOpen       OrderStatus = "TRADING_OPEN"
	TradingInProgress OrderStatus = "TRADING_IN_PROGRESS"
	TradingParked     OrderStatus = "TRADING_PARKED"
	TradingSubmitted  OrderStatus = "TRADING_SUBMITTED"

	Completed OrderStatus = "COMPLETED"
)

type descriptor struct {
	Status OrderStatus
	Family Family
	Parked bool
}

// workflow lists every status in workflow order together with its declared
// classification. Nothing is derived from the status names.
var workflow = []descriptor{
	{Status: Draft},
	{Status: Submitted},
	{Status: Started},

	{Status: AuditReviewLevel1Open, Family: AuditReviewFamily},
	{Status: AuditReviewLevel1InProgress, Family: AuditReviewFamily},
	{Status: AuditReviewLevel1Parked, Family: AuditReviewFamily, Parked: true},
	{Status: AuditReviewLevel1Submitted, Family: AuditReviewFamily},
	{Status: AuditReviewLevel2Open, Family: AuditReviewFamily},
	{Status: AuditReviewLevel2InProgress, Family: AuditReviewFamily},
	{Status: AuditReviewLevel2Parked, Family: AuditReviewFamily, Parked: true},
	{Status: AuditReviewLevel2Approved, Family: AuditReviewFamily},

	{Status: CreditApprovalLevel1Open, Family: CreditApprovalFamily},
	{Status: CreditApprovalLevel1InProgress, Family: CreditApprovalFamily},
	{Status: CreditApprovalLevel1Parked, Family: CreditApprovalFamily, Parked: true},
	{Status: CreditApprovalLevel1Submitted, Family: CreditApprovalFamily},
	{Status: CreditApprovalLevel2Open, Family: CreditApprovalFamily},
	{Status: CreditApprovalLevel2InProgress, Family: CreditApprovalFamily},
	{Status: CreditApprovalLevel2Parked, Family: CreditApprovalFamily, Parked: true},
	{Status: CreditApprovalLevel2Approved, Family: CreditApprovalFamily},

	{Status: TradingOpen, Family: TradingFamily},
	{Status: TradingInProgress, Family: TradingFamily},
	{Status: TradingParked, Family: TradingFamily, Parked: true},
	{Status: TradingSubmitted, Family: TradingFamily},

	{Status: Completed},
}

var index = func() map[OrderStatus]int {
	m := make(map[OrderStatus]int, len(workflow))
	for i, d := range workflow {
		m[d.Status] = i
	}
	return m
}()

// Parse returns the catalogued status with the given name.
func Parse(name string) (OrderStatus, error) {
	s := OrderStatus(name)
	if !s.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, name)
	}
	return s, nil
}

// All returns every status in workflow order.
func All() []OrderStatus {
	r := make([]OrderStatus, 0, len(workflow))
	for _, d := range workflow {
		r = append(r, d.Status)
	}
	return r
}

// InFamily returns the statuses of family f in workflow order.
func InFamily(f Family) []OrderStatus {
	r := []OrderStatus{}
	if f == NoFamily {
		return r
	}
	for _, d := range workflow {
		if d.Family == f {
			r = append(r, d.Status)
		}
	}
	return r
}

func (s OrderStatus) Known() bool {
	_, found := index[s]
	return found
}

// Ordinal is the position of s in the workflow, or -1 for an uncatalogued status.
func (s OrderStatus) Ordinal() int {
	if i, found := index[s]; found {
		return i
	}
	return -1
}

func (s OrderStatus) Family() Family {
	if i, found := index[s]; found {
		return workflow[i].Family
	}
	return NoFamily
}

// IsParked reports whether an order in this status is paused.
func (s OrderStatus) IsParked() bool {
	if i, found := index[s]; found {
		return workflow[i].Parked
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}
