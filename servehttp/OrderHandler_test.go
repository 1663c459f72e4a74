package servehttp_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"
	"turnaround/bizerror"
	"turnaround/domain"
	"turnaround/domain/order"
	"turnaround/domain/state"
	"turnaround/domain/tat"
	"turnaround/servehttp"
	"turnaround/testinfra"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("OrderHandler", func() {
	var (
		router       *gin.Engine
		orderManager *orderManagerMock
	)

	BeforeEach(func() {
		router = gin.Default()
		router.Use(bizerror.ErrorHandling())
		orderManager = &orderManagerMock{}
		servehttp.RegisterOrderHandler(router, orderManager)
	})

	Describe("handleRecordTransition", func() {
		It("should record the transition", func() {
			var captured *order.TransitionCreation
			orderManager.RecordTransitionFunc = func(orderID string, c *order.TransitionCreation) (*order.TransitionRecord, error) {
				captured = c
				return &order.TransitionRecord{ID: 123, OrderID: orderID, Status: c.Status, ChangeTime: c.ChangeTime}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/transitions",
				strings.NewReader(`{"status": "TRADING_OPEN", "changeTime": "2023-01-02T09:00:00"}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusCreated))
			Expect(body).To(MatchJSON(`{"id": "123", "orderId": "o-1", "status": "TRADING_OPEN", "changeTime": "2023-01-02T09:00:00"}`))
			Expect(*captured).To(Equal(order.TransitionCreation{
				Status: state.TradingOpen, ChangeTime: testinfra.LocalTime("2023-01-02T09:00:00"),
			}))
		})

		It("should keep sub-second change times", func() {
			orderManager.RecordTransitionFunc = func(orderID string, c *order.TransitionCreation) (*order.TransitionRecord, error) {
				return &order.TransitionRecord{ID: 124, OrderID: orderID, Status: c.Status, ChangeTime: c.ChangeTime}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/transitions",
				strings.NewReader(`{"status": "TRADING_OPEN", "changeTime": "2023-01-02T09:00:00.123456"}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusCreated))
			Expect(body).To(MatchJSON(`{"id": "124", "orderId": "o-1", "status": "TRADING_OPEN", "changeTime": "2023-01-02T09:00:00.123456"}`))
		})

		It("should reject unknown statuses without recording", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/transitions",
				strings.NewReader(`{"status": "TRADING_CLOSED", "changeTime": "2023-01-02T09:00:00"}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(MatchJSON(`{"code": "common.bad_param", "message": "unknown status: \"TRADING_CLOSED\"", "data": null}`))
			Expect(orderManager.recordCalls).To(BeZero())
		})

		It("should be able to handle error when record transition", func() {
			orderManager.RecordTransitionFunc = func(orderID string, c *order.TransitionCreation) (*order.TransitionRecord, error) {
				return nil, errors.New("a mocked error")
			}
			req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/transitions",
				strings.NewReader(`{"status": "DRAFT", "changeTime": "2023-01-02T09:00:00"}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusInternalServerError))
			Expect(body).To(MatchJSON(`{"code": "common.internal_server_error", "message": "a mocked error", "data": null}`))
		})
	})

	Describe("handleQueryTats", func() {
		report := tat.Report{
			OrderID: "o-1", Overall: 70 * time.Minute, Review: 10 * time.Minute, Execution: 50 * time.Minute,
			Teams: []tat.TeamReport{{TeamName: "TRADING", Net: 50 * time.Minute, BusinessHours: 50 * time.Minute, Blocks: []tat.BlockTat{}}},
		}

		It("should return the report of the order", func() {
			orderManager.QueryReportFunc = func(orderID string) (*tat.Report, error) {
				Expect(orderID).To(Equal("o-1"))
				return &report, nil
			}
			req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1/tats", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"orderId": "o-1",
				"overall": {"seconds": 4200, "text": "1h10m0s"}, "review": {"seconds": 600, "text": "10m0s"},
				"execution": {"seconds": 3000, "text": "50m0s"},
				"teams": [{"teamName": "TRADING", "net": {"seconds": 3000, "text": "50m0s"},
					"businessHours": {"seconds": 3000, "text": "50m0s"}, "blocks": []}]}`))
		})

		It("should return the report of one team", func() {
			orderManager.QueryTeamReportFunc = func(orderID, teamName string) (*tat.TeamReport, error) {
				Expect(teamName).To(Equal("TRADING"))
				return &report.Teams[0], nil
			}
			req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1/tats?team=TRADING", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"teamName": "TRADING", "net": {"seconds": 3000, "text": "50m0s"},
				"businessHours": {"seconds": 3000, "text": "50m0s"}, "blocks": []}`))
		})

		It("should map missing orders and teams to not found", func() {
			orderManager.QueryReportFunc = func(orderID string) (*tat.Report, error) {
				return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
			}
			orderManager.QueryTeamReportFunc = func(orderID, teamName string) (*tat.TeamReport, error) {
				return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTeam, teamName)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-404/tats", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body).To(MatchJSON(`{"code": "common.record_not_found", "message": "record not found", "data": null}`))

			req = httptest.NewRequest(http.MethodGet, "/v1/orders/o-1/tats?team=SETTLEMENT", nil)
			status, body, _ = testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body).To(MatchJSON(`{"code": "tat.unknown_team", "message": "unknown team: SETTLEMENT", "data": null}`))
		})
	})
})

type orderManagerMock struct {
	RecordTransitionFunc func(orderID string, c *order.TransitionCreation) (*order.TransitionRecord, error)
	QueryReportFunc      func(orderID string) (*tat.Report, error)
	QueryTeamReportFunc  func(orderID, teamName string) (*tat.TeamReport, error)
	recordCalls          int
}

func (m *orderManagerMock) RecordTransition(ctx context.Context, orderID string, c *order.TransitionCreation) (*order.TransitionRecord, error) {
	m.recordCalls++
	return m.RecordTransitionFunc(orderID, c)
}
func (m *orderManagerMock) DetailOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	panic("implement me")
}
func (m *orderManagerMock) QueryReport(ctx context.Context, orderID string) (*tat.Report, error) {
	return m.QueryReportFunc(orderID)
}
func (m *orderManagerMock) QueryTeamReport(ctx context.Context, orderID, teamName string) (*tat.TeamReport, error) {
	return m.QueryTeamReportFunc(orderID, teamName)
}
