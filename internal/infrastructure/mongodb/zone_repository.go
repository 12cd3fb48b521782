package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meditrack/meditrack-core/internal/domain"
	"github.com/meditrack/meditrack-core/internal/domain/entity"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
)

var _ repository.ZoneRepository = (*ZoneRepo)(nil)

// ZoneRepo implémentation de ZoneRepository sur MongoDB. Un document par
// dépôt, garanti par l'index unique sur depot_id.
type ZoneRepo struct {
	coll *mongo.Collection
}

// NewZoneRepository construit l'adaptateur sur la collection zones.
func NewZoneRepository(coll *mongo.Collection) *ZoneRepo {
	return &ZoneRepo{coll: coll}
}

// GetByDepot renvoie le document du dépôt, ou nil, nil s'il n'existe pas.
func (r *ZoneRepo) GetByDepot(ctx context.Context, depotID int64) (*entity.ZoneLayout, error) {
	var layout entity.ZoneLayout
	err := r.coll.FindOne(ctx, bson.M{"depot_id": depotID}).Decode(&layout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zones: %w", err)
	}
	return &layout, nil
}

// Create insère le document du dépôt. Un document déjà présent (détecté en
// amont ou par l'index unique sous concurrence) donne ConflictError.
func (r *ZoneRepo) Create(ctx context.Context, layout *entity.ZoneLayout) error {
	existing, err := r.GetByDepot(ctx, layout.DepotID)
	if err != nil {
		return err
	}
	if existing != nil {
		return &domain.ConflictError{Message: "Des zones existent déjà pour ce dépôt. Utilisez PUT pour mettre à jour."}
	}

	now := time.Now().UTC()
	layout.CreatedAt = now
	layout.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, layout)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Message: "Des zones existent déjà pour ce dépôt. Utilisez PUT pour mettre à jour."}
		}
		return fmt.Errorf("insert zones: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		layout.ID = oid
	}
	return nil
}

// Upsert remplace le document en bloc (création si absent) et rafraîchit
// updated_at. Renvoie le document résultant.
func (r *ZoneRepo) Upsert(ctx context.Context, depotID int64, zones []entity.Zone) (*entity.ZoneLayout, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set":         bson.M{"zones": zones, "updated_at": now},
		"$setOnInsert": bson.M{"depot_id": depotID, "created_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var layout entity.ZoneLayout
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"depot_id": depotID}, update, opts).Decode(&layout)
	if err != nil {
		return nil, fmt.Errorf("upsert zones: %w", err)
	}
	return &layout, nil
}

// Delete supprime le document du dépôt, ou ErrNotFound s'il n'y en a pas.
func (r *ZoneRepo) Delete(ctx context.Context, depotID int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"depot_id": depotID})
	if err != nil {
		return fmt.Errorf("delete zones: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
