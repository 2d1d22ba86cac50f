package resource

import (
	"net/url"
	"strconv"
	"strings"
)

// Helpers de binding form -> payload: strings recortados, ids numéricos y
// opcionales vacíos como null.

func Text(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}

// ID interpreta un id de select/hidden. Vacío o inválido => 0.
func ID(v url.Values, key string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(v.Get(key)), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func OptString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func OptID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

// OptFloat devuelve nil si s está vacío o no es un número.
func OptFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func DerefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func FormatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
