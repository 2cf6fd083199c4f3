// Package memory contains process-local implementations of the persistence layer.
package memory

import (
	"context"
	"sync"

	"sos/internal/domain/entity"
	"sos/internal/domain/repository"
)

// alertRepository keeps one alert document per owner in memory.
type alertRepository struct {
	mu     sync.RWMutex
	alerts map[string]*entity.Alert
}

// NewAlertRepository is the constructor for the in-memory alert repository.
func NewAlertRepository() repository.AlertRepository {
	return &alertRepository{alerts: make(map[string]*entity.Alert)}
}

// FindAlertByOwner returns a copy of the owner's alert, or nil when none exists.
func (repo *alertRepository) FindAlertByOwner(_ context.Context, ownerID string) (*entity.Alert, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.alerts[ownerID].Clone(), nil
}

// SaveAlert stores a copy of the alert, replacing any previous document of the owner.
func (repo *alertRepository) SaveAlert(_ context.Context, alert *entity.Alert) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.alerts[alert.OwnerID] = alert.Clone()

	return nil
}
