// Package datefmt formatea las fechas que devuelve el backend para mostrarlas
// en español y para precargar inputs date/datetime-local.
package datefmt

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const NotAvailable = "No disponible"

const longLayout = "2 de January de 2006, 15:04"

// El backend manda fechas con o sin zona (DateTime de .NET sin Kind).
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Long: "5 de marzo de 2024, 14:30". Vacío o inválido => "No disponible".
func Long(s *string) string {
	if s == nil {
		return NotAvailable
	}
	t, ok := Parse(*s)
	if !ok {
		return NotAvailable
	}
	return monday.Format(t, longLayout, monday.LocaleEsES)
}

// Short: "5/3/2024".
func Short(s string) string {
	t, ok := Parse(s)
	if !ok {
		return s
	}
	return t.Format("2/1/2006")
}

// DateInput recorta a YYYY-MM-DD para un <input type="date">.
func DateInput(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if i := strings.Index(v, "T"); i >= 0 {
		v = v[:i]
	}
	return v
}

// DateTimeInput devuelve YYYY-MM-DDTHH:MM en UTC para <input type="datetime-local">.
func DateTimeInput(s *string) string {
	if s == nil {
		return ""
	}
	t, ok := Parse(*s)
	if !ok {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04")
}
