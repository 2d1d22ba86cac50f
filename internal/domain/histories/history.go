package histories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vet-clinic-web/internal/platform/httpclient"
	"vet-clinic-web/internal/ports/gateway"
)

// ErrNotFound: el animal todavía no tiene historia (se crea con el primer PUT).
var ErrNotFound = errors.New("historia clínica no encontrada")

type History struct {
	ID            int64   `json:"id,omitempty"`
	AnimalID      int64   `json:"animalId"`
	Observaciones *string `json:"observaciones"`
	FechaCreacion *string `json:"fechaCreacion"`
}

type Payload struct {
	AnimalID      int64   `json:"animalId"`
	Observaciones *string `json:"observaciones"`
}

func Path(animalID int64) string {
	return fmt.Sprintf("/HistoriasClinicas/animal/%d", animalID)
}

// Fetch trae la historia del animal. 404 (o "no encontrada") => ErrNotFound.
func Fetch(ctx context.Context, api gateway.Requester, animalID int64) (History, error) {
	var h History
	if err := api.DoJSON(ctx, http.MethodGet, Path(animalID), nil, &h); err != nil {
		if isNotFound(err) {
			return History{}, ErrNotFound
		}
		return History{}, err
	}
	return h, nil
}

// Upsert guarda las observaciones; el backend crea la historia si no existe.
func Upsert(ctx context.Context, api gateway.Requester, p Payload) (History, error) {
	var h History
	if err := api.DoJSON(ctx, http.MethodPut, Path(p.AnimalID), p, &h); err != nil {
		return History{}, err
	}
	return h, nil
}

func isNotFound(err error) bool {
	var apiErr *httpclient.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusNotFound {
		return true
	}
	// algunos backends responden otro status con el mensaje del 404
	return strings.Contains(apiErr.Message, "404") || strings.Contains(apiErr.Message, "no encontrada")
}
