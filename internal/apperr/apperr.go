// Package apperr holds the error types and wire messages shared by the
// entity services and the transport layer.
package apperr

import "errors"

// The public API speaks French; these are the exact strings clients see.
const (
	MsgInvalid         = "Données invalides"
	MsgNoFields        = "Aucune donnée à mettre à jour"
	MsgScoreRange      = "Le score doit être entre 1 et 5"
	MsgServer          = "Erreur serveur"
	MsgProductNotFound = "Produit non trouvé"
	MsgOrderNotFound   = "Commande non trouvée"
	MsgReviewNotFound  = "Avis non trouvé"
)

// ValidationError is a client-caused input error. Message is returned on the
// wire as-is, so it must never carry storage detail.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError carrying the given wire message.
func Invalid(msg string) error { return &ValidationError{Message: msg} }

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
