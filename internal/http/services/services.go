// Package services orquesta los repositorios del store y el mantenimiento de
// back-references entre Usuario/Tag/Finanza, además del flujo de login.
//
// Política de errores: toda falla del store se traduce acá a un *AppError del
// paquete http/errors antes de volver al controller; ningún error crudo del
// driver cruza este borde.
package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	"github.com/dasolarter/finanzasapi/internal/store"
)

// translateStoreErr mapea errores del store a la taxonomía de la API.
func translateStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return httperrors.ErrNotFound
	case errors.Is(err, store.ErrInvalidID):
		return httperrors.ErrValidation.WithDetail("el id no es válido")
	default:
		return httperrors.ErrStore.WithCause(err)
	}
}

// parseID convierte un id hex del request; inválido => ValidationError.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return primitive.NilObjectID, httperrors.ErrValidation.WithDetail("el id no es válido")
	}
	return oid, nil
}

// parseIDs convierte una lista de ids hex; el primero inválido corta.
func parseIDs(ids []string) ([]primitive.ObjectID, error) {
	oids, err := store.ParseIDs(ids)
	if err != nil {
		return nil, httperrors.ErrValidation.WithDetail("hay ids no válidos en la lista")
	}
	return oids, nil
}
