package dto

// CreateProduitRequest entrée pour créer un produit.
// Quantite est optionnelle et vaut 0 par défaut (stock d'ouverture).
type CreateProduitRequest struct {
	Nom      string `json:"nom"`
	Code     string `json:"code"`
	Quantite *int64 `json:"quantite"`
	DepotID  int64  `json:"depot_id"`
}

// UpdateProduitRequest entrée pour mettre à jour un produit.
// Quantite est présente pour détecter, et refuser, toute tentative d'écrasement
// direct du stock : seule la création de mouvements modifie la quantité.
type UpdateProduitRequest struct {
	Nom      *string `json:"nom"`
	Code     *string `json:"code"`
	Quantite *int64  `json:"quantite"`
	DepotID  *int64  `json:"depot_id"`
}

// ProduitResponse sortie d'un produit (avec nom du dépôt sur les lectures).
type ProduitResponse struct {
	ID       int64  `json:"id"`
	Nom      string `json:"nom"`
	Code     string `json:"code"`
	Quantite int64  `json:"quantite"`
	DepotID  int64  `json:"depot_id"`
	DepotNom string `json:"depot_nom,omitempty"`
}
