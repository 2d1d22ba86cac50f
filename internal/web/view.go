package web

import (
	"vet-clinic-web/internal/app"
	"vet-clinic-web/internal/domain/animals"
	"vet-clinic-web/internal/domain/breeds"
	"vet-clinic-web/internal/domain/histories"
	"vet-clinic-web/internal/domain/medications"
	"vet-clinic-web/internal/domain/owners"
	"vet-clinic-web/internal/domain/selectors"
	"vet-clinic-web/internal/domain/species"
	"vet-clinic-web/internal/domain/treatments"
	"vet-clinic-web/internal/domain/vets"
	"vet-clinic-web/internal/platform/notify"
	"vet-clinic-web/internal/resource"
)

type tabLink struct {
	Tab    app.Tab
	Title  string
	Active bool
}

// section es el listado y el form de un recurso; Name es el segmento de
// ruta (/r/{Name}/...).
type section[F any] struct {
	Name string
	List resource.ListView
	Form resource.FormState[F]
}

type confirmView struct {
	Resource string
	Message  string
}

type pageData struct {
	AppName        string
	Active         app.Tab
	Tabs           []tabLink
	Toasts         []notify.Toast
	ToastTTLMillis int64
	Confirm        *confirmView
	History        histories.View
	Sel            selectors.View

	Animals     section[animals.Form]
	Owners      section[owners.Form]
	Vets        section[vets.Form]
	Treatments  section[treatments.Form]
	Species     section[species.Form]
	Breeds      section[breeds.Form]
	Medications section[medications.Form]
}

// resourceNames en el orden en que se busca una baja pendiente.
var resourceNames = []string{"animales", "duenos", "veterinarios", "tratamientos", "especies", "razas", "medicamentos"}

func sectionOf[T resource.Record, F resource.Form](name string, c *resource.Controller[T, F]) section[F] {
	return section[F]{Name: name, List: c.Render(), Form: c.Form()}
}

// buildPage arma el view-model a partir del estado de la sesión. No hace
// requests: todo sale de lo ya cargado.
func (s *server) buildPage(a *app.App) pageData {
	active := a.Active()

	tabs := make([]tabLink, 0, len(app.Tabs))
	for _, t := range app.Tabs {
		tabs = append(tabs, tabLink{Tab: t, Title: t.Title(), Active: t == active})
	}

	p := pageData{
		AppName:        s.appName,
		Active:         active,
		Tabs:           tabs,
		Toasts:         a.Notify.Active(),
		ToastTTLMillis: s.toastTTL.Milliseconds(),
		History:        a.Histories.View(),
		Sel:            a.Selectors.View(),

		Animals:     sectionOf("animales", a.Animals),
		Owners:      sectionOf("duenos", a.Owners),
		Vets:        sectionOf("veterinarios", a.Vets),
		Treatments:  sectionOf("tratamientos", a.Treatments),
		Species:     sectionOf("especies", a.Species),
		Breeds:      sectionOf("razas", a.Breeds),
		Medications: sectionOf("medicamentos", a.Medications),
	}

	for _, name := range resourceNames {
		act, _, ok := a.Resource(name)
		if !ok {
			continue
		}
		if pd := act.Pending(); pd != nil {
			p.Confirm = &confirmView{Resource: name, Message: pd.Message}
			break
		}
	}
	return p
}
