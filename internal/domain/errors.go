package domain

import (
	"errors"
	"fmt"
)

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound = errors.New("ressource non trouvée")
	// ErrTransient signale un échec passager (timeout, annulation) : l'appelant
	// peut rejouer la requête telle quelle.
	ErrTransient = errors.New("erreur transitoire, réessayez")
)

// ValidationError entrée invalide, avec un message destiné au client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf construit une ValidationError formatée.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError contrainte d'unicité violée (code produit déjà pris).
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

// ReferenceError référence étrangère inexistante (dépôt inconnu).
type ReferenceError struct {
	Message string
}

func (e *ReferenceError) Error() string { return e.Message }

// ConflictError l'opération contredit l'état actuel (document de zones déjà
// présent, dépôt encore référencé par des produits).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// InsufficientStockError refus d'un mouvement OUT qui rendrait le stock négatif.
// Porte le stock courant et la quantité demandée pour le message client.
type InsufficientStockError struct {
	Actuel   int64
	Demandee int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuffisant. Stock actuel: %d, demandé: %d", e.Actuel, e.Demandee)
}
