package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ZoneLayout le document d'organisation d'un dépôt : un seul document par
// dépôt (depot_id unique), remplacé en bloc à chaque mise à jour. Données
// purement structurelles : aucune validation croisée avec le stock réel.
type ZoneLayout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DepotID   int64              `bson:"depot_id" json:"depot_id"`
	Zones     []Zone             `bson:"zones" json:"zones"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Zone une zone nommée du dépôt, composée de bacs.
type Zone struct {
	Nom         string `bson:"nom" json:"nom"`
	Description string `bson:"description" json:"description"`
	Bacs        []Bac  `bson:"bacs" json:"bacs"`
}

// Bac un bac de rangement avec ses emplacements produits.
type Bac struct {
	Nom      string      `bson:"nom" json:"nom"`
	Capacite int64       `bson:"capacite" json:"capacite"`
	Produits []Placement `bson:"produits" json:"produits"`
}

// Placement un produit posé dans un bac avec sa quantité déclarée.
type Placement struct {
	ProduitID int64 `bson:"produit_id" json:"produit_id"`
	Quantite  int64 `bson:"quantite" json:"quantite"`
}
