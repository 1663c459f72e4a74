package calendar_test

import (
	"time"
	"turnaround/domain/calendar"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// 2023-01-02 is a Monday, 2023-01-06 a Friday.
func day(d, hour, minute int) time.Time {
	return time.Date(2023, 1, d, hour, minute, 0, 0, time.UTC)
}

var _ = Describe("BusinessCalendar", func() {
	hours := calendar.BusinessHours{Start: calendar.At(9, 0), Cutoff: calendar.At(17, 0)}

	Describe("TimeOfDay", func() {
		It("should parse and print clock values", func() {
			t, err := calendar.ParseTimeOfDay("17:00")
			Expect(err).To(BeNil())
			Expect(t).To(Equal(calendar.At(17, 0)))
			Expect(t.String()).To(Equal("17:00"))

			t, err = calendar.ParseTimeOfDay("08:30:15")
			Expect(err).To(BeNil())
			Expect(t.String()).To(Equal("08:30:15"))

			_, err = calendar.ParseTimeOfDay("25:00")
			Expect(err).ToNot(BeNil())
		})
		It("should place a clock value on a date", func() {
			Expect(calendar.At(9, 30).On(day(4, 23, 59))).To(Equal(day(4, 9, 30)))
			Expect(calendar.ClockOf(day(4, 13, 45))).To(Equal(calendar.At(13, 45)))
		})
	})

	Describe("Validate", func() {
		It("should reject start time not before cutoff", func() {
			Expect(hours.Validate()).To(BeNil())
			Expect(calendar.BusinessHours{Start: calendar.At(17, 0), Cutoff: calendar.At(9, 0)}.Validate()).
				To(MatchError("start time 17:00 must be before cutoff time 09:00"))
			Expect(calendar.BusinessHours{Start: calendar.At(9, 0), Cutoff: calendar.At(9, 0)}.Validate()).ToNot(BeNil())
		})
		It("should reject unknown zones", func() {
			h := hours
			h.Zone = "Mars/Olympus_Mons"
			Expect(h.Validate()).To(MatchError(`unknown zone "Mars/Olympus_Mons"`))
		})
	})

	Describe("NextBusinessDayStart", func() {
		It("should keep a business date", func() {
			Expect(calendar.NextBusinessDayStart(day(4, 20, 0), hours)).To(Equal(day(4, 9, 0)))
		})
		It("should skip weekend dates", func() {
			Expect(calendar.NextBusinessDayStart(day(7, 10, 0), hours)).To(Equal(day(9, 9, 0)))
			Expect(calendar.NextBusinessDayStart(day(8, 10, 0), hours)).To(Equal(day(9, 9, 0)))
		})
	})

	Describe("AdjustStart", func() {
		It("should move after-cutoff starts to the next business day", func() {
			Expect(calendar.AdjustStart(day(6, 17, 30), hours)).To(Equal(day(9, 9, 0)))
			Expect(calendar.AdjustStart(day(4, 17, 30), hours)).To(Equal(day(5, 9, 0)))
		})
		It("should clamp early starts to start time", func() {
			Expect(calendar.AdjustStart(day(4, 7, 0), hours)).To(Equal(day(4, 9, 0)))
			Expect(calendar.AdjustStart(day(7, 7, 0), hours)).To(Equal(day(9, 9, 0)))
		})
		It("should move weekend starts to monday", func() {
			Expect(calendar.AdjustStart(day(8, 12, 0), hours)).To(Equal(day(9, 9, 0)))
		})
		It("should keep starts inside business hours, cutoff included", func() {
			Expect(calendar.AdjustStart(day(4, 12, 0), hours)).To(Equal(day(4, 12, 0)))
			Expect(calendar.AdjustStart(day(4, 17, 0), hours)).To(Equal(day(4, 17, 0)))
		})
	})

	Describe("CalculateDuration", func() {
		It("should count a span within one business day", func() {
			Expect(calendar.CalculateDuration(day(2, 10, 0), day(2, 10, 40), hours)).To(Equal(40 * time.Minute))
		})
		It("should stop counting at cutoff and resume at start time", func() {
			Expect(calendar.CalculateDuration(day(2, 16, 0), day(3, 10, 0), hours)).To(Equal(2 * time.Hour))
			Expect(calendar.CalculateDuration(day(2, 10, 0), day(2, 20, 0), hours)).To(Equal(7 * time.Hour))
		})
		It("should contribute nothing for a full weekend", func() {
			Expect(calendar.CalculateDuration(day(6, 16, 0), day(9, 10, 0), hours)).To(Equal(2 * time.Hour))
			Expect(calendar.CalculateDuration(day(7, 0, 0), day(8, 23, 0), hours)).To(BeZero())
		})
		It("should accrue after-cutoff entries from the next business day start", func() {
			Expect(calendar.CalculateDuration(day(6, 17, 30), day(9, 9, 30), hours)).To(Equal(30 * time.Minute))
		})
		It("should count whole business days in between", func() {
			Expect(calendar.CalculateDuration(day(2, 9, 0), day(4, 17, 0), hours)).To(Equal(24 * time.Hour))
		})
		It("should degrade to zero", func() {
			Expect(calendar.CalculateDuration(day(3, 10, 0), day(2, 10, 0), hours)).To(BeZero())
			Expect(calendar.CalculateDuration(day(2, 10, 0), time.Time{}, hours)).To(BeZero())
			Expect(calendar.CalculateDuration(time.Time{}, day(2, 10, 0), hours)).To(BeZero())
			Expect(calendar.CalculateDuration(day(2, 17, 30), day(2, 18, 0), hours)).To(BeZero())
			Expect(calendar.CalculateDuration(day(2, 10, 0), day(2, 10, 0), hours)).To(BeZero())
		})
	})
})
