package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/meditrack/meditrack-core/pkg/config"
)

// Connect ouvre le client MongoDB du store documentaire et vérifie la
// connexion. Le cycle de vie appartient à l'appelant (Disconnect à l'arrêt).
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connexion MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}

// ZonesCollection renvoie la collection des plans de zones et pose l'index
// unique sur depot_id (un seul document par dépôt, la création concurrente du
// deuxième échoue côté store).
func ZonesCollection(ctx context.Context, client *mongo.Client, database string) (*mongo.Collection, error) {
	coll := client.Database(database).Collection("zones")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "depot_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("index zones.depot_id: %w", err)
	}
	return coll, nil
}
