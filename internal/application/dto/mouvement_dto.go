package dto

import "time"

// CreateMouvementRequest entrée du service de mouvements de stock.
type CreateMouvementRequest struct {
	Type      string `json:"type"`
	Quantite  int64  `json:"quantite"`
	ProduitID int64  `json:"produit_id"`
}

// MouvementResponse sortie d'une écriture du journal.
type MouvementResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Quantite    int64     `json:"quantite"`
	ProduitID   int64     `json:"produit_id"`
	Date        time.Time `json:"date"`
	ProduitNom  string    `json:"produit_nom,omitempty"`
	ProduitCode string    `json:"produit_code,omitempty"`
}

// RegisterMouvementResponse sortie de la création d'un mouvement :
// l'écriture insérée et la quantité résultante du produit.
type RegisterMouvementResponse struct {
	Mouvement        MouvementResponse `json:"mouvement"`
	NouvelleQuantite int64             `json:"nouvelle_quantite"`
}
