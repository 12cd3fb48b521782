package dto

// CreateDepotRequest entrée pour créer un dépôt.
type CreateDepotRequest struct {
	Nom     string `json:"nom"`
	Adresse string `json:"adresse"`
}

// UpdateDepotRequest entrée pour mettre à jour un dépôt (champs optionnels).
type UpdateDepotRequest struct {
	Nom     *string `json:"nom"`
	Adresse *string `json:"adresse"`
}

// DepotResponse sortie d'un dépôt.
type DepotResponse struct {
	ID      int64  `json:"id"`
	Nom     string `json:"nom"`
	Adresse string `json:"adresse"`
}
