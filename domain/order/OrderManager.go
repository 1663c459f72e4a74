package order

import (
	"context"
	"fmt"
	"sync"
	"time"
	"turnaround/common"
	"turnaround/domain"
	"turnaround/domain/state"
	"turnaround/domain/tat"

	"github.com/opentracing/opentracing-go"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
)

type OrderManagerTraits interface {
	RecordTransition(ctx context.Context, orderID string, c *TransitionCreation) (*TransitionRecord, error)
	DetailOrder(ctx context.Context, orderID string) (*domain.Order, error)
	QueryReport(ctx context.Context, orderID string) (*tat.Report, error)
	QueryTeamReport(ctx context.Context, orderID, teamName string) (*tat.TeamReport, error)
}

type TransitionCreation struct {
	Status     state.OrderStatus
	ChangeTime time.Time
}

// OrderManager serves turn-around reports of stored orders. Reports are cached
// per order until the order records a new transition or the cache entry expires.
type OrderManager struct {
	store      TransitionStore
	aggregator *tat.Aggregator
	reports    *cache.Cache
	idWorker   *sonyflake.Sonyflake

	// versions counts the transitions recorded per order by this manager; a
	// report is cached only if no transition was recorded while it was computed.
	versionLock sync.Mutex
	versions    map[string]uint64
}

func NewOrderManager(store TransitionStore, aggregator *tat.Aggregator, reportTTL time.Duration) *OrderManager {
	return &OrderManager{
		store:      store,
		aggregator: aggregator,
		reports:    cache.New(reportTTL, 2*reportTTL),
		idWorker:   common.NewIdWorker(),
		versions:   map[string]uint64{},
	}
}

func (m *OrderManager) RecordTransition(ctx context.Context, orderID string, c *TransitionCreation) (*TransitionRecord, error) {
	if orderID == "" {
		return nil, &common.ErrBadParam{Cause: fmt.Errorf("order id is required")}
	}
	if !c.Status.Known() {
		return nil, &common.ErrBadParam{Cause: fmt.Errorf("%w: %q", state.ErrUnknownStatus, c.Status)}
	}
	if c.ChangeTime.IsZero() {
		return nil, &common.ErrBadParam{Cause: fmt.Errorf("change time is required")}
	}

	record := &TransitionRecord{
		ID:         common.NextId(m.idWorker),
		OrderID:    orderID,
		Status:     c.Status,
		ChangeTime: domain.NaiveTime(c.ChangeTime),
		CreateTime: time.Now(),
	}
	if err := m.store.AppendTransition(ctx, record); err != nil {
		return nil, err
	}
	m.versionLock.Lock()
	m.versions[orderID]++
	m.reports.Delete(orderID)
	m.versionLock.Unlock()

	common.LogWithContext(ctx).WithFields(logrus.Fields{"orderId": orderID, "status": c.Status}).Info("transition recorded")
	return record, nil
}

func (m *OrderManager) DetailOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	records, err := m.store.QueryTransitions(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}

	o := &domain.Order{OrderID: orderID, Transitions: make([]domain.StatusTransition, 0, len(records))}
	for _, r := range records {
		o.Transitions = append(o.Transitions, domain.StatusTransition{Status: r.Status, ChangeTime: domain.NaiveTime(r.ChangeTime)})
	}
	return o, nil
}

// QueryReport returns the report of the order. The result is a copy the caller
// may modify freely.
func (m *OrderManager) QueryReport(ctx context.Context, orderID string) (*tat.Report, error) {
	if cached, found := m.reports.Get(orderID); found {
		if r, ok := cached.(tat.Report); ok {
			clone := r.Clone()
			return &clone, nil
		}
	}

	m.versionLock.Lock()
	version := m.versions[orderID]
	m.versionLock.Unlock()

	span, ctx := opentracing.StartSpanFromContext(ctx, "tat.report")
	defer span.Finish()
	span.SetTag("orderId", orderID)

	o, err := m.DetailOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	r := m.aggregator.Report(o)

	m.versionLock.Lock()
	if m.versions[orderID] == version {
		m.reports.SetDefault(orderID, r.Clone())
	}
	m.versionLock.Unlock()
	return &r, nil
}

func (m *OrderManager) QueryTeamReport(ctx context.Context, orderID, teamName string) (*tat.TeamReport, error) {
	if _, err := m.aggregator.Teams().Lookup(teamName); err != nil {
		return nil, err
	}
	r, err := m.QueryReport(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, t := range r.Teams {
		if t.TeamName == teamName {
			teamReport := t
			return &teamReport, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTeam, teamName)
}
