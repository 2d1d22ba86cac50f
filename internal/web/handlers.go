package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"vet-clinic-web/internal/app"
	"vet-clinic-web/internal/middleware"
	"vet-clinic-web/internal/resource"

	"github.com/go-chi/chi/v5"
)

// requestCtx: una navegación no cancela un fetch en curso; cada request al
// backend tiene igual su propio deadline en el gateway.
func requestCtx(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func sessionApp(w http.ResponseWriter, r *http.Request) (*app.App, bool) {
	a, ok := middleware.GetApp(r.Context())
	if !ok {
		http.Error(w, "session not found", http.StatusInternalServerError)
	}
	return a, ok
}

// back redirige (POST/redirect/GET) al tab indicado.
func back(w http.ResponseWriter, r *http.Request, tab app.Tab) {
	http.Redirect(w, r, "/tabs/"+string(tab), http.StatusSeeOther)
}

func (s *server) showTab(w http.ResponseWriter, r *http.Request) {
	a, ok := sessionApp(w, r)
	if !ok {
		return
	}

	tab, err := app.ParseTab(chi.URLParam(r, "tab"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	reload := r.URL.Query().Get("load") == "1"
	if err := a.Visit(requestCtx(r), tab, reload); err != nil {
		http.NotFound(w, r)
		return
	}
	s.render(w, "page", s.buildPage(a))
}

// resourceFor resuelve /r/{resource}; 404 si no existe.
func resourceFor(w http.ResponseWriter, r *http.Request) (*app.App, resource.Actions, app.Tab, bool) {
	a, ok := sessionApp(w, r)
	if !ok {
		return nil, nil, "", false
	}
	act, tab, ok := a.Resource(chi.URLParam(r, "resource"))
	if !ok {
		http.NotFound(w, r)
		return nil, nil, "", false
	}
	return a, act, tab, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (s *server) submit(w http.ResponseWriter, r *http.Request) {
	a, act, tab, ok := resourceFor(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	ctx := requestCtx(r)

	// un form inválido no llega a la red: ni el POST ni los GET del tab
	if act.ValidateValues(r.PostForm) == nil {
		if err := a.Visit(ctx, tab, false); err != nil {
			http.NotFound(w, r)
			return
		}
	}

	// el error ya quedó como toast; el form conserva lo ingresado
	if err := act.SubmitValues(ctx, r.PostForm); err != nil && !errors.Is(err, resource.ErrSubmitInProgress) {
		s.log.Debug("submit rejected", map[string]any{"resource": chi.URLParam(r, "resource"), "error": err})
	}
	back(w, r, tab)
}

func (s *server) cancel(w http.ResponseWriter, r *http.Request) {
	_, act, tab, ok := resourceFor(w, r)
	if !ok {
		return
	}
	act.Cancel()
	back(w, r, tab)
}

func (s *server) edit(w http.ResponseWriter, r *http.Request) {
	a, act, tab, ok := resourceFor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := requestCtx(r)
	if err := a.Visit(ctx, tab, false); err != nil {
		http.NotFound(w, r)
		return
	}
	if !act.EditByID(ctx, id) {
		a.Notify.Error("Registro no encontrado")
	}
	back(w, r, tab)
}

func (s *server) requestDelete(w http.ResponseWriter, r *http.Request) {
	_, act, tab, ok := resourceFor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	act.RequestDelete(id)
	back(w, r, tab)
}

func (s *server) confirmDelete(w http.ResponseWriter, r *http.Request) {
	_, act, tab, ok := resourceFor(w, r)
	if !ok {
		return
	}
	if err := act.ConfirmDelete(requestCtx(r)); err != nil && !errors.Is(err, resource.ErrNoPendingDelete) {
		s.log.Debug("delete failed", map[string]any{"resource": chi.URLParam(r, "resource"), "error": err})
	}
	back(w, r, tab)
}

func (s *server) abortDelete(w http.ResponseWriter, r *http.Request) {
	_, act, tab, ok := resourceFor(w, r)
	if !ok {
		return
	}
	act.AbortDelete()
	back(w, r, tab)
}

// breedOptions devuelve sólo los <option> del select de razas para la
// especie elegida en el form de animales.
func (s *server) breedOptions(w http.ResponseWriter, r *http.Request) {
	a, ok := sessionApp(w, r)
	if !ok {
		return
	}

	var especieID int64
	if raw := r.URL.Query().Get("especieId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			http.Error(w, "invalid especieId", http.StatusBadRequest)
			return
		}
		especieID = n
	}

	// el fallo ya queda reflejado en el placeholder del select
	_ = a.Selectors.LoadBreeds(requestCtx(r), especieID)
	s.render(w, "select-options", selectView{Select: a.Selectors.View().Breeds})
}

func (s *server) openHistory(w http.ResponseWriter, r *http.Request) {
	a, ok := sessionApp(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := requestCtx(r)
	if err := a.Visit(ctx, app.TabAnimales, false); err != nil {
		http.NotFound(w, r)
		return
	}
	_ = a.OpenHistory(ctx, id)
	back(w, r, app.TabAnimales)
}

func (s *server) saveHistory(w http.ResponseWriter, r *http.Request) {
	a, ok := sessionApp(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	_ = a.Histories.Save(requestCtx(r), id, r.PostForm.Get("observaciones"))
	back(w, r, a.Active())
}

func (s *server) closeHistory(w http.ResponseWriter, r *http.Request) {
	a, ok := sessionApp(w, r)
	if !ok {
		return
	}
	a.Histories.Close()
	back(w, r, a.Active())
}

func (s *server) dismissToast(w http.ResponseWriter, r *http.Request) {
	a, ok := sessionApp(w, r)
	if !ok {
		return
	}
	a.Notify.Dismiss(chi.URLParam(r, "id"))
	back(w, r, a.Active())
}
