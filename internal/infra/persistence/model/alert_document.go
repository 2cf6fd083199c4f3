package model

import (
	"time"

	"sos/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertDocument is the stored shape of an alert. One document exists per owner and
// its key is the owner ID. Both the Firestore and the MongoDB repositories use it.
type AlertDocument struct {
	OwnerID    string            `firestore:"userId" bson:"_id"`
	AlertID    string            `firestore:"alertId" bson:"alertId"`
	OwnerName  string            `firestore:"userName" bson:"userName"`
	OwnerPhone string            `firestore:"userPhone,omitempty" bson:"userPhone,omitempty"`
	Location   LocationDocument  `firestore:"location" bson:"location"`
	Message    string            `firestore:"message" bson:"message"`
	Status     string            `firestore:"status" bson:"status"`
	CreatedAt  time.Time         `firestore:"timestamp" bson:"timestamp"`
	UpdatedAt  time.Time         `firestore:"updatedAt" bson:"updatedAt"`
	Contacts   []ContactDocument `firestore:"contacts" bson:"contacts"`
}

// LocationDocument is the stored shape of a position.
type LocationDocument struct {
	Latitude  float64 `firestore:"latitude" bson:"latitude"`
	Longitude float64 `firestore:"longitude" bson:"longitude"`
	Address   string  `firestore:"address,omitempty" bson:"address,omitempty"`
	Accuracy  float64 `firestore:"accuracy,omitempty" bson:"accuracy,omitempty"`
}

// ContactDocument is the stored shape of a notified contact.
type ContactDocument struct {
	Name               string     `firestore:"name" bson:"name"`
	Phone              string     `firestore:"phone" bson:"phone"`
	NotificationStatus string     `firestore:"notificationStatus" bson:"notificationStatus"`
	MessageID          string     `firestore:"messageId,omitempty" bson:"messageId,omitempty"`
	Provider           string     `firestore:"provider,omitempty" bson:"provider,omitempty"`
	ErrorDetail        string     `firestore:"error,omitempty" bson:"error,omitempty"`
	Attempts           int        `firestore:"attempts" bson:"attempts"`
	NotifiedAt         *time.Time `firestore:"notifiedAt,omitempty" bson:"notifiedAt,omitempty"`
}

// FromAlertDomain converts a domain alert into its stored document.
func FromAlertDomain(alert *entity.Alert) *AlertDocument {
	contacts := make([]ContactDocument, 0, len(alert.Contacts))
	for _, c := range alert.Contacts {
		contacts = append(contacts, ContactDocument{
			Name:               c.Name,
			Phone:              c.Phone,
			NotificationStatus: string(c.NotificationStatus),
			MessageID:          c.ProviderMessageID,
			Provider:           c.Provider,
			ErrorDetail:        c.ErrorDetail,
			Attempts:           c.Attempts,
			NotifiedAt:         c.NotifiedAt,
		})
	}

	return &AlertDocument{
		OwnerID:    alert.OwnerID,
		AlertID:    alert.ID.String(),
		OwnerName:  alert.OwnerName,
		OwnerPhone: alert.OwnerPhone,
		Location: LocationDocument{
			Latitude:  alert.Position.Latitude,
			Longitude: alert.Position.Longitude,
			Address:   alert.Position.Address,
			Accuracy:  alert.Position.Accuracy,
		},
		Message:   alert.Message,
		Status:    string(alert.Status),
		CreatedAt: alert.CreatedAt,
		UpdatedAt: alert.UpdatedAt,
		Contacts:  contacts,
	}
}

// ToDomain converts the stored document back into a domain alert.
func (d *AlertDocument) ToDomain() (*entity.Alert, error) {
	id, err := uuid.Parse(d.AlertID)
	if err != nil {
		return nil, err
	}

	contacts := make([]entity.Contact, 0, len(d.Contacts))
	for _, c := range d.Contacts {
		contacts = append(contacts, entity.Contact{
			Name:               c.Name,
			Phone:              c.Phone,
			NotificationStatus: entity.NotificationStatus(c.NotificationStatus),
			ProviderMessageID:  c.MessageID,
			Provider:           c.Provider,
			ErrorDetail:        c.ErrorDetail,
			Attempts:           c.Attempts,
			NotifiedAt:         c.NotifiedAt,
		})
	}

	return &entity.Alert{
		ID:         id,
		OwnerID:    d.OwnerID,
		OwnerName:  d.OwnerName,
		OwnerPhone: d.OwnerPhone,
		Position: entity.Position{
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
			Address:   d.Location.Address,
			Accuracy:  d.Location.Accuracy,
		},
		Message:   d.Message,
		Status:    entity.AlertStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Contacts:  contacts,
	}, nil
}
