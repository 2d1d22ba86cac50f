package mockapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"vet-clinic-web/internal/mockapi/store"
	"vet-clinic-web/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const maxRequestBody = 1 << 20

// problem replica el ValidationProblemDetails de ASP.NET.
type problem struct {
	Type   string              `json:"type,omitempty"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// record es sólo para la documentación Swagger; el cuerpo real es un objeto
// JSON libre según el recurso.
type record map[string]any

type historyRequest struct {
	AnimalID      int64   `json:"animalId"`
	Observaciones *string `json:"observaciones"`
}

type handlers struct {
	svc *Service
	log logger.Logger
}

// RegisterRoutes monta todos los recursos bajo r (normalmente /api).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := &handlers{svc: svc, log: log}

	for _, sc := range schemas {
		sc := sc
		r.Route(sc.Path, func(rr chi.Router) {
			rr.Get("/", h.list(sc))
			rr.Post("/", h.create(sc))
			rr.Get("/{id}", h.get(sc))
			rr.Put("/{id}", h.update(sc))
			rr.Delete("/{id}", h.delete(sc))

			if sc.Kind == store.KindRazas {
				rr.Get("/por-especie/{especieID}", h.breedsBySpecies())
			}
		})
	}

	r.Route("/HistoriasClinicas/animal/{animalID}", func(hr chi.Router) {
		hr.Get("/", h.getHistory())
		hr.Put("/", h.putHistory())
	})
}

// list godoc
// @Summary Listar registros de un recurso
// @Description Devuelve todos los registros ordenados por id, con sus objetos relacionados embebidos (especie, raza, dueno, animal, veterinario, medicamento).
// @Tags recursos
// @Produce json
// @Success 200 {array} record
// @Router /Animales [get]
// @Router /Duenos [get]
// @Router /Veterinarios [get]
// @Router /Tratamientos [get]
// @Router /Especies [get]
// @Router /Razas [get]
// @Router /Medicamentos [get]
func (h *handlers) list(sc schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := h.svc.List(r.Context(), sc.Kind)
		if err != nil {
			h.writeError(w, sc, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

// get godoc
// @Summary Obtener un registro
// @Tags recursos
// @Produce json
// @Param id path int true "ID del registro"
// @Success 200 {object} record
// @Failure 404 {object} messageResponse
// @Router /Animales/{id} [get]
// @Router /Duenos/{id} [get]
// @Router /Veterinarios/{id} [get]
// @Router /Tratamientos/{id} [get]
// @Router /Especies/{id} [get]
// @Router /Razas/{id} [get]
// @Router /Medicamentos/{id} [get]
func (h *handlers) get(sc schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		rec, err := h.svc.Get(r.Context(), sc.Kind, id)
		if err != nil {
			h.writeError(w, sc, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// create godoc
// @Summary Crear un registro
// @Description Los strings vacíos se guardan como null. Animales acepta además `observacionesHistoria`, que crea la historia clínica si trae texto. Tratamientos fija `fechaTratamiento` al momento del alta.
// @Tags recursos
// @Accept json
// @Produce json
// @Param payload body record true "Campos del recurso"
// @Success 201 {object} record
// @Failure 400 {object} problem
// @Router /Animales [post]
// @Router /Duenos [post]
// @Router /Veterinarios [post]
// @Router /Tratamientos [post]
// @Router /Especies [post]
// @Router /Razas [post]
// @Router /Medicamentos [post]
func (h *handlers) create(sc schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}
		rec, err := h.svc.Create(r.Context(), sc.Kind, body)
		if err != nil {
			h.writeError(w, sc, err)
			return
		}
		h.log.Debug("record created", map[string]any{"kind": string(sc.Kind), "id": rec.ID()})
		writeJSON(w, http.StatusCreated, rec)
	}
}

// update godoc
// @Summary Reemplazar un registro
// @Tags recursos
// @Accept json
// @Produce json
// @Param id path int true "ID del registro"
// @Param payload body record true "Campos del recurso"
// @Success 200 {object} record
// @Failure 400 {object} problem
// @Failure 404 {object} messageResponse
// @Router /Animales/{id} [put]
// @Router /Duenos/{id} [put]
// @Router /Veterinarios/{id} [put]
// @Router /Tratamientos/{id} [put]
// @Router /Especies/{id} [put]
// @Router /Razas/{id} [put]
// @Router /Medicamentos/{id} [put]
func (h *handlers) update(sc schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}
		rec, err := h.svc.Update(r.Context(), sc.Kind, id, body)
		if err != nil {
			h.writeError(w, sc, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// delete godoc
// @Summary Eliminar un registro
// @Description Cascadas: borrar un dueño deja a sus animales sin dueño; borrar un veterinario borra sus tratamientos; borrar un animal borra sus tratamientos y su historia; una especie con animales no se puede borrar (409) y si no los tiene se borran sus razas.
// @Tags recursos
// @Param id path int true "ID del registro"
// @Success 204
// @Failure 404 {object} messageResponse
// @Failure 409 {object} messageResponse
// @Router /Animales/{id} [delete]
// @Router /Duenos/{id} [delete]
// @Router /Veterinarios/{id} [delete]
// @Router /Tratamientos/{id} [delete]
// @Router /Especies/{id} [delete]
// @Router /Razas/{id} [delete]
// @Router /Medicamentos/{id} [delete]
func (h *handlers) delete(sc schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := h.svc.Delete(r.Context(), sc.Kind, id); err != nil {
			h.writeError(w, sc, err)
			return
		}
		h.log.Debug("record deleted", map[string]any{"kind": string(sc.Kind), "id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

// breedsBySpecies godoc
// @Summary Listar razas de una especie
// @Tags recursos
// @Produce json
// @Param especieID path int true "ID de la especie"
// @Success 200 {array} record
// @Router /Razas/por-especie/{especieID} [get]
func (h *handlers) breedsBySpecies() http.HandlerFunc {
	sc, _ := schemaFor(store.KindRazas)
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "especieID")
		if !ok {
			return
		}
		recs, err := h.svc.BreedsBySpecies(r.Context(), id)
		if err != nil {
			h.writeError(w, sc, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

var historySchema = schema{Kind: store.KindHistorias, Entity: "Historia clínica", Female: true}

// getHistory godoc
// @Summary Obtener la historia clínica de un animal
// @Description 404 mientras el animal no tenga historia; se crea con el primer PUT.
// @Tags historias
// @Produce json
// @Param animalID path int true "ID del animal"
// @Success 200 {object} record
// @Failure 404 {object} messageResponse
// @Router /HistoriasClinicas/animal/{animalID} [get]
func (h *handlers) getHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "animalID")
		if !ok {
			return
		}
		rec, err := h.svc.GetHistory(r.Context(), id)
		if err != nil {
			h.writeError(w, historySchema, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// putHistory godoc
// @Summary Crear o actualizar la historia clínica de un animal
// @Tags historias
// @Accept json
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param payload body historyRequest true "Observaciones; vacío se guarda como null"
// @Success 200 {object} record
// @Failure 400 {object} problem
// @Failure 404 {object} messageResponse
// @Router /HistoriasClinicas/animal/{animalID} [put]
func (h *handlers) putHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "animalID")
		if !ok {
			return
		}
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}
		rec, err := h.svc.PutHistory(r.Context(), id, body)
		if err != nil {
			h.writeError(w, historySchema, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func (h *handlers) writeError(w http.ResponseWriter, sc schema, err error) {
	var (
		verr     *ValidationError
		conflict *ConflictError
	)
	switch {
	case errors.As(err, &verr):
		writeProblem(w, verr.Errors)
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, messageResponse{Message: conflict.Message})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: sc.notFoundMessage()})
	default:
		h.log.Error("mockapi request failed", map[string]any{"kind": string(sc.Kind), "error": err})
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Error interno del servidor"})
	}
}

func writeProblem(w http.ResponseWriter, errs map[string][]string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(problem{
		Type:   "https://tools.ietf.org/html/rfc9110#section-15.5.1",
		Title:  "One or more validation errors occurred.",
		Status: http.StatusBadRequest,
		Errors: errs,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request) (store.Record, bool) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeProblem(w, map[string][]string{"$": {"invalid body"}})
		return nil, false
	}
	rec, err := store.Decode(raw)
	if err != nil {
		writeProblem(w, map[string][]string{"$": {"invalid json"}})
		return nil, false
	}
	return rec, true
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, map[string][]string{param: {"The value is not valid."}})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
