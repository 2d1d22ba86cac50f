package resource

// Ref es la forma embebida que devuelve el backend para mostrar relaciones
// (especie, raza, dueno, animal, veterinario, medicamento).
type Ref struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	NumeroLicencia string `json:"numeroLicencia,omitempty"`
}

// NameOr devuelve el nombre o fallback si la relación no vino.
func (r *Ref) NameOr(fallback string) string {
	if r == nil || r.Nombre == "" {
		return fallback
	}
	return r.Nombre
}

// ListView es el view-model de un listado. Render es función pura de la
// colección guardada (más el último error de carga).
type ListView struct {
	Rows      []Row
	Empty     bool
	EmptyText string
	Error     *ErrorPanel
}

type ErrorPanel struct {
	Title   string
	Message string
}

// Row lleva solo el ID en sus acciones: editar resuelve el registro desde
// la colección del controller.
type Row struct {
	ID      int64
	Title   string
	Details []Detail
	Notes   []string

	// HasHistory habilita el acceso a historia clínica (solo animales).
	HasHistory bool
}

type Detail struct {
	Label string
	Value string
}

type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

const (
	labelSave   = "Guardar"
	labelUpdate = "Actualizar"
)

// FormState es el view-model del formulario de alta/edición.
type FormState[F any] struct {
	Values      F
	Mode        Mode
	Title       string
	SubmitLabel string
	ShowCancel  bool
	Submitting  bool
}

// PendingDelete es el estado "esperando confirmación" antes del DELETE.
type PendingDelete struct {
	ID      int64
	Message string
}
