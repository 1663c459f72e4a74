package order

import (
	"context"
	"time"
	"turnaround/domain/state"
	"turnaround/persistence"

	"github.com/fundwit/go-commons/types"
)

// TransitionRecord is the stored form of a status transition.
type TransitionRecord struct {
	ID         types.ID          `json:"id"`
	OrderID    string            `json:"orderId" gorm:"index;type:varchar(64);not null"`
	Status     state.OrderStatus `json:"status" gorm:"type:varchar(64);not null"`
	ChangeTime time.Time         `json:"changeTime" sql:"type:DATETIME(6) NOT NULL"`
	CreateTime time.Time         `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (TransitionRecord) TableName() string {
	return "order_status_transitions"
}

type TransitionStore interface {
	AppendTransition(ctx context.Context, record *TransitionRecord) error
	QueryTransitions(ctx context.Context, orderID string) ([]TransitionRecord, error)
}

type GormTransitionStore struct {
	dataSource *persistence.DataSourceManager
}

func NewGormTransitionStore(ds *persistence.DataSourceManager) *GormTransitionStore {
	return &GormTransitionStore{dataSource: ds}
}

func (s *GormTransitionStore) AppendTransition(ctx context.Context, record *TransitionRecord) error {
	return s.dataSource.GormDB(ctx).Create(record).Error
}

// QueryTransitions returns the transitions of an order in recording order.
func (s *GormTransitionStore) QueryTransitions(ctx context.Context, orderID string) ([]TransitionRecord, error) {
	records := []TransitionRecord{}
	if err := s.dataSource.GormDB(ctx).Where(&TransitionRecord{OrderID: orderID}).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
