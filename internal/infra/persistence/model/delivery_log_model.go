package model

import (
	"time"

	"sos/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryLogModel is the GORM-specific struct for the 'sms_delivery_logs' table.
// It represents the outcome of one emergency SMS sent to one contact.
type DeliveryLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID      string    `gorm:"type:text;not null;index"`
	ContactName  string    `gorm:"type:text"`
	ContactPhone string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:text;not null;default:'pending'"`
	Provider     string    `gorm:"type:text"`
	MessageID    string    `gorm:"type:text"`
	ErrorMessage string    `gorm:"type:text"`
	RetryCount   int       `gorm:"not null;default:0"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "sms_delivery_logs"
}

// FromDeliveryLogDomain converts a domain delivery log into its GORM model.
func FromDeliveryLogDomain(log *entity.DeliveryLog) *DeliveryLogModel {
	return &DeliveryLogModel{
		ID:           log.ID,
		AlertID:      log.AlertID,
		OwnerID:      log.OwnerID,
		ContactName:  log.ContactName,
		ContactPhone: log.ContactPhone,
		Status:       log.Status,
		Provider:     log.Provider,
		MessageID:    log.MessageID,
		ErrorMessage: log.ErrorMessage,
		RetryCount:   log.RetryCount,
		SentAt:       log.SentAt,
	}
}

// ToDomain converts the GORM model into a domain delivery log.
func (m *DeliveryLogModel) ToDomain() *entity.DeliveryLog {
	return &entity.DeliveryLog{
		ID:           m.ID,
		AlertID:      m.AlertID,
		OwnerID:      m.OwnerID,
		ContactName:  m.ContactName,
		ContactPhone: m.ContactPhone,
		Status:       m.Status,
		Provider:     m.Provider,
		MessageID:    m.MessageID,
		ErrorMessage: m.ErrorMessage,
		RetryCount:   m.RetryCount,
		SentAt:       m.SentAt,
	}
}
