package state_test

import (
	"errors"
	"turnaround/domain/state"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("OrderStatus", func() {
	Describe("Parse", func() {
		It("should return catalogued statuses", func() {
			s, err := state.Parse("TRADING_PARKED")
			Expect(err).To(BeNil())
			Expect(s).To(Equal(state.TradingParked))
		})
		It("should reject unknown statuses", func() {
			s, err := state.Parse("TRADING_SLEEPING")
			Expect(s).To(BeZero())
			Expect(errors.Is(err, state.ErrUnknownStatus)).To(BeTrue())
			Expect(err.Error()).To(Equal(`unknown status: "TRADING_SLEEPING"`))
		})
	})

	Describe("classification", func() {
		It("should flag only the declared parked variants", func() {
			parked := []state.OrderStatus{}
			for _, s := range state.All() {
				if s.IsParked() {
					parked = append(parked, s)
				}
			}
			Expect(parked).To(Equal([]state.OrderStatus{
				state.AuditReviewLevel1Parked, state.AuditReviewLevel2Parked,
				state.CreditApprovalLevel1Parked, state.CreditApprovalLevel2Parked,
				state.TradingParked,
			}))
			Expect(state.OrderStatus("SOMETHING_PARKED").IsParked()).To(BeFalse())
		})

		It("should keep credit approval statuses out of the audit review family", func() {
			Expect(state.CreditApprovalLevel1Open.Family()).To(Equal(state.CreditApprovalFamily))
			Expect(state.InFamily(state.AuditReviewFamily)).ToNot(ContainElement(state.CreditApprovalLevel1Open))
			Expect(state.InFamily(state.TradingFamily)).To(Equal([]state.OrderStatus{
				state.TradingOpen, state.TradingInProgress, state.TradingParked, state.TradingSubmitted,
			}))
			Expect(state.InFamily(state.NoFamily)).To(BeEmpty())
			Expect(state.Draft.Family()).To(Equal(state.NoFamily))
		})
	})

	Describe("Ordinal", func() {
		It("should follow the workflow order", func() {
			Expect(state.Draft.Ordinal()).To(Equal(0))
			Expect(state.Submitted.Ordinal() < state.Started.Ordinal()).To(BeTrue())
			Expect(state.TradingSubmitted.Ordinal() < state.Completed.Ordinal()).To(BeTrue())
			Expect(state.Completed.Ordinal()).To(Equal(len(state.All()) - 1))
			Expect(state.OrderStatus("UNKNOWN").Ordinal()).To(Equal(-1))
		})
	})
})
