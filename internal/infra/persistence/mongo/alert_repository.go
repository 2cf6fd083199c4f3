// Package mongo stores alert documents in MongoDB, one document per owner.
package mongo

import (
	"context"

	"sos/internal/domain/entity"
	"sos/internal/domain/repository"
	"sos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// alertRepository implements repository.AlertRepository on a MongoDB collection keyed by owner ID.
type alertRepository struct {
	collection *mongo.Collection
}

// NewAlertRepository is the constructor for the MongoDB alert repository.
func NewAlertRepository(db *mongo.Database, collection string) repository.AlertRepository {
	return &alertRepository{
		collection: db.Collection(collection),
	}
}

func (repo *alertRepository) FindAlertByOwner(ctx context.Context, ownerID string) (*entity.Alert, error) {
	var doc model.AlertDocument
	err := repo.collection.FindOne(ctx, bson.M{"_id": ownerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alert document")
	}

	alert, err := doc.ToDomain()
	if err != nil {
		return nil, errors.Wrap(err, "invalid alert document")
	}

	return alert, nil
}

// SaveAlert replaces the owner's document, inserting it when absent.
func (repo *alertRepository) SaveAlert(ctx context.Context, alert *entity.Alert) error {
	doc := model.FromAlertDomain(alert)
	opts := options.Replace().SetUpsert(true)

	if _, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": doc.OwnerID}, doc, opts); err != nil {
		return errors.Wrap(err, "failed to save alert document")
	}

	return nil
}
