package memory

import (
	"context"
	"sync"

	"sos/internal/domain/entity"
	"sos/internal/domain/repository"

	"github.com/google/uuid"
)

// DeliveryLogCapacity is how many rows the in-memory log keeps before dropping the oldest.
const DeliveryLogCapacity = 10000

// deliveryLogRepository keeps the most recent SMS tracking rows in memory.
type deliveryLogRepository struct {
	mu       sync.RWMutex
	capacity int
	logs     []*entity.DeliveryLog
}

// NewDeliveryLogRepository is the constructor for the in-memory delivery log repository.
func NewDeliveryLogRepository() repository.DeliveryLogRepository {
	return newDeliveryLogRepository(DeliveryLogCapacity)
}

func newDeliveryLogRepository(capacity int) *deliveryLogRepository {
	return &deliveryLogRepository{capacity: capacity}
}

func (repo *deliveryLogRepository) CreateDeliveryLog(_ context.Context, log *entity.DeliveryLog) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if log.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		log.ID = id
	}

	stored := *log
	if len(repo.logs) >= repo.capacity {
		repo.logs[0] = nil
		repo.logs = repo.logs[1:]
	}
	repo.logs = append(repo.logs, &stored)

	return nil
}

func (repo *deliveryLogRepository) FindDeliveryLogsByAlert(_ context.Context, alertID uuid.UUID) ([]*entity.DeliveryLog, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]*entity.DeliveryLog, 0)
	for _, log := range repo.logs {
		if log.AlertID == alertID {
			found := *log
			result = append(result, &found)
		}
	}

	return result, nil
}
