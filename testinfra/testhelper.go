package testinfra

import (
	"io"
	"net/http"
	"net/http/httptest"
	"time"
	"turnaround/domain"
	"turnaround/domain/state"

	. "github.com/onsi/gomega"
)

// ExecuteRequest serves req with handler and returns the recorded response.
func ExecuteRequest(req *http.Request, handler http.Handler) (int, string, *http.Response) {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	Expect(err).To(BeNil())
	return resp.StatusCode, string(body), resp
}

// LocalTime parses a "2006-01-02T15:04:05" literal and fails the test on error.
func LocalTime(value string) time.Time {
	t, err := domain.ParseLocalDateTime(value)
	Expect(err).To(BeNil())
	return t
}

// BuildOrder builds an order from alternating status and change time literals.
func BuildOrder(orderID string, pairs ...string) *domain.Order {
	Expect(len(pairs)%2).To(BeZero())
	o := &domain.Order{OrderID: orderID}
	for i := 0; i < len(pairs); i += 2 {
		o.Transitions = append(o.Transitions, domain.StatusTransition{
			Status: state.OrderStatus(pairs[i]), ChangeTime: LocalTime(pairs[i+1]),
		})
	}
	return o
}
