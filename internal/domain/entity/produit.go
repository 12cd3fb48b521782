package entity

// Produit une unité de stock rattachée à un dépôt.
// Quantite n'est modifiée que par le service de mouvements; l'invariant
// quantite >= 0 est garanti après chaque mouvement commité (et doublé d'un
// CHECK côté base).
type Produit struct {
	ID       int64
	Nom      string
	Code     string // unique
	Quantite int64
	DepotID  int64
	DepotNom string // renseigné par les lectures jointes, vide sinon
}
