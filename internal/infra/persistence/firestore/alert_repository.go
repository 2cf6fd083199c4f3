// Package firestore stores alert documents in Cloud Firestore, one document per owner.
package firestore

import (
	"context"

	"sos/internal/domain/entity"
	"sos/internal/domain/repository"
	"sos/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// alertRepository implements repository.AlertRepository on a Firestore collection.
type alertRepository struct {
	collection *firestore.CollectionRef
}

// NewAlertRepository is the constructor for the Firestore alert repository.
func NewAlertRepository(client *firestore.Client, collection string) repository.AlertRepository {
	return &alertRepository{
		collection: client.Collection(collection),
	}
}

// FindAlertByOwner reads the owner's document, returning nil when it does not exist.
func (repo *alertRepository) FindAlertByOwner(ctx context.Context, ownerID string) (*entity.Alert, error) {
	snap, err := repo.collection.Doc(ownerID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read alert document")
	}

	var doc model.AlertDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode alert document")
	}
	doc.OwnerID = ownerID

	alert, err := doc.ToDomain()
	if err != nil {
		return nil, errors.Wrap(err, "invalid alert document")
	}

	return alert, nil
}

// SaveAlert overwrites the owner's document with the full alert.
func (repo *alertRepository) SaveAlert(ctx context.Context, alert *entity.Alert) error {
	if _, err := repo.collection.Doc(alert.OwnerID).Set(ctx, model.FromAlertDomain(alert)); err != nil {
		return errors.Wrap(err, "failed to write alert document")
	}

	return nil
}
