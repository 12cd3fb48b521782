package entity

// Depot un entrepôt physique.
type Depot struct {
	ID      int64
	Nom     string
	Adresse string
}
