package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPNRRepository implements PNRRepository on a pnrs collection
type MongoPNRRepository struct {
	collection *mongo.Collection
}

// NewMongoPNRRepository creates a new PNR repository
func NewMongoPNRRepository(db *mongo.Database) repository.PNRRepository {
	collection := db.Collection("pnrs")

	// Create unique index on recordLocator
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"recordLocator": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	// Create index on status for admin queries
	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}
	collection.Indexes().CreateOne(ctx, statusIndex)

	return &MongoPNRRepository{
		collection: collection,
	}
}

// Create inserts a new PNR document and returns its generated id
func (r *MongoPNRRepository) Create(ctx context.Context, pnr *entity.PNR) (string, error) {
	now := time.Now()
	pnr.CreatedAt = now
	pnr.UpdatedAt = now
	if pnr.ID == "" {
		pnr.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, pnr)
	if err != nil {
		return "", fmt.Errorf("insert pnr %s: %w", pnr.RecordLocator, err)
	}
	return pnr.ID, nil
}

// Update applies a partial field update and appends one history entry.
// History entries live under history.<millis> keys so earlier entries
// are never overwritten.
func (r *MongoPNRRepository) Update(ctx context.Context, id string, fields map[string]interface{}, history entity.HistoryEntry) error {
	updateDoc := bson.M{}
	for k, v := range fields {
		updateDoc[k] = v
	}
	updateDoc["updatedAt"] = time.Now()

	historyKey := fmt.Sprintf("history.%d", history.Timestamp.UnixMilli())
	updateDoc[historyKey] = history

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)
	if err != nil {
		return fmt.Errorf("update pnr %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("update pnr %s: no document matched", id)
	}
	return nil
}

// FindByLocator finds a PNR by record locator; cancelled (deleted)
// records are not retrievable. A missing locator returns nil, nil.
func (r *MongoPNRRepository) FindByLocator(ctx context.Context, locator string) (*entity.PNR, error) {
	var pnr entity.PNR
	filter := bson.M{
		"recordLocator": locator,
		"isDeleted":     bson.M{"$ne": true},
	}
	err := r.collection.FindOne(ctx, filter).Decode(&pnr)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pnr, nil
}
