package mockapi

import "vet-clinic-web/internal/mockapi/store"

type fieldType int

const (
	typeString fieldType = iota
	typeInt
	typeFloat
	typeDate
)

type field struct {
	Name     string
	Type     fieldType
	Required bool

	// Ref: el id debe existir en ese kind.
	Ref store.Kind
}

// schema describe un recurso del backend: ruta, campos aceptados y cómo
// se embeben sus relaciones al listar.
type schema struct {
	Kind   store.Kind
	Path   string
	Entity string // para mensajes: "Animal", "Especie"...
	Female bool
	Fields []field
	Embeds []embed
}

// embed agrega el objeto relacionado (p.ej. "especie") a partir de un id.
type embed struct {
	Key     string
	IDField string
	Kind    store.Kind
	Fields  []string
}

var nameOnly = []string{"id", "nombre"}

var schemas = []schema{
	{
		Kind:   store.KindAnimales,
		Path:   "/Animales",
		Entity: "Animal",
		Fields: []field{
			{Name: "nombre", Type: typeString, Required: true},
			{Name: "especieId", Type: typeInt, Required: true, Ref: store.KindEspecies},
			{Name: "razaId", Type: typeInt, Ref: store.KindRazas},
			{Name: "fechaNacimiento", Type: typeDate},
			{Name: "color", Type: typeString},
			{Name: "peso", Type: typeFloat},
			{Name: "duenoId", Type: typeInt, Ref: store.KindDuenos},
		},
		Embeds: []embed{
			{Key: "especie", IDField: "especieId", Kind: store.KindEspecies, Fields: nameOnly},
			{Key: "raza", IDField: "razaId", Kind: store.KindRazas, Fields: nameOnly},
			{Key: "dueno", IDField: "duenoId", Kind: store.KindDuenos, Fields: nameOnly},
		},
	},
	{
		Kind:   store.KindDuenos,
		Path:   "/Duenos",
		Entity: "Dueño",
		Fields: []field{
			{Name: "nombre", Type: typeString, Required: true},
			{Name: "direccion", Type: typeString},
			{Name: "telefono", Type: typeString},
			{Name: "email", Type: typeString},
		},
	},
	{
		Kind:   store.KindVeterinarios,
		Path:   "/Veterinarios",
		Entity: "Veterinario",
		Fields: []field{
			{Name: "nombre", Type: typeString, Required: true},
			{Name: "direccion", Type: typeString},
			{Name: "telefono", Type: typeString},
			{Name: "numeroLicencia", Type: typeString, Required: true},
			{Name: "especialidad", Type: typeString},
		},
	},
	{
		Kind:   store.KindTratamientos,
		Path:   "/Tratamientos",
		Entity: "Tratamiento",
		Fields: []field{
			{Name: "animalId", Type: typeInt, Required: true, Ref: store.KindAnimales},
			{Name: "veterinarioId", Type: typeInt, Required: true, Ref: store.KindVeterinarios},
			{Name: "descripcion", Type: typeString, Required: true},
			{Name: "medicamentoId", Type: typeInt, Ref: store.KindMedicamentos},
			{Name: "dosis", Type: typeString},
			{Name: "diagnostico", Type: typeString},
			{Name: "proximaCita", Type: typeDate},
		},
		Embeds: []embed{
			{Key: "animal", IDField: "animalId", Kind: store.KindAnimales, Fields: nameOnly},
			{Key: "veterinario", IDField: "veterinarioId", Kind: store.KindVeterinarios, Fields: []string{"id", "nombre", "numeroLicencia"}},
			{Key: "medicamento", IDField: "medicamentoId", Kind: store.KindMedicamentos, Fields: nameOnly},
		},
	},
	{
		Kind:   store.KindEspecies,
		Path:   "/Especies",
		Entity: "Especie",
		Female: true,
		Fields: []field{
			{Name: "nombre", Type: typeString, Required: true},
			{Name: "descripcion", Type: typeString},
		},
	},
	{
		Kind:   store.KindRazas,
		Path:   "/Razas",
		Entity: "Raza",
		Female: true,
		Fields: []field{
			{Name: "especieId", Type: typeInt, Required: true, Ref: store.KindEspecies},
			{Name: "nombre", Type: typeString, Required: true},
			{Name: "descripcion", Type: typeString},
		},
		Embeds: []embed{
			{Key: "especie", IDField: "especieId", Kind: store.KindEspecies, Fields: nameOnly},
		},
	},
	{
		Kind:   store.KindMedicamentos,
		Path:   "/Medicamentos",
		Entity: "Medicamento",
		Fields: []field{
			{Name: "nombre", Type: typeString, Required: true},
			{Name: "principioActivo", Type: typeString},
			{Name: "presentacion", Type: typeString},
			{Name: "descripcion", Type: typeString},
		},
	},
}

func schemaFor(kind store.Kind) (schema, bool) {
	for _, s := range schemas {
		if s.Kind == kind {
			return s, true
		}
	}
	return schema{}, false
}

func (s schema) notFoundMessage() string {
	if s.Female {
		return s.Entity + " no encontrada"
	}
	return s.Entity + " no encontrado"
}
