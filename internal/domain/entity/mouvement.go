package entity

import "time"

// Types de mouvement de stock.
const (
	MouvementTypeIN  = "IN"
	MouvementTypeOUT = "OUT"
)

// Mouvement une écriture immuable du journal de stock. Jamais modifiée ni
// supprimée une fois insérée; la date est attribuée par le serveur de base.
type Mouvement struct {
	ID          int64
	Type        string // IN ou OUT
	Quantite    int64  // strictement positive
	ProduitID   int64
	Date        time.Time
	ProduitNom  string // lectures jointes uniquement
	ProduitCode string
}
