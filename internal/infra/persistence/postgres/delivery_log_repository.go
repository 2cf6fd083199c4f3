// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/repository"
	"sos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// CreateDeliveryLog persists a new SMS delivery log entry.
func (repo *deliveryLogRepository) CreateDeliveryLog(ctx context.Context, log *entity.DeliveryLog) error {
	logM := model.FromDeliveryLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewStoreError(err, "invalid alert reference in delivery log")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewStoreError(err, "missing required delivery log information")
		}

		return domainerrors.NewStoreError(err, "failed to create delivery log")
	}

	// Update the entity with generated values
	log.ID = logM.ID

	return nil
}

// FindDeliveryLogsByAlert retrieves the delivery log of one alert, oldest first.
func (repo *deliveryLogRepository) FindDeliveryLogsByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.DeliveryLog, error) {
	var logModels []*model.DeliveryLogModel

	if err := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("sent_at ASC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs by alert")
	}

	logs := make([]*entity.DeliveryLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, logM.ToDomain())
	}

	return logs, nil
}
