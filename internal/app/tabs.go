package app

import (
	"errors"
	"strings"
)

var ErrUnknownTab = errors.New("unknown tab")

type Tab string

const (
	TabAnimales      Tab = "animales"
	TabDuenos        Tab = "duenos"
	TabVeterinarios  Tab = "veterinarios"
	TabTratamientos  Tab = "tratamientos"
	TabConfiguracion Tab = "configuracion"
)

// Tabs en el orden en que se muestran.
var Tabs = []Tab{TabAnimales, TabDuenos, TabVeterinarios, TabTratamientos, TabConfiguracion}

func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tabs {
		if t == known {
			return t, nil
		}
	}
	return "", ErrUnknownTab
}

func (t Tab) Title() string {
	switch t {
	case TabAnimales:
		return "Animales"
	case TabDuenos:
		return "Dueños"
	case TabVeterinarios:
		return "Veterinarios"
	case TabTratamientos:
		return "Tratamientos"
	case TabConfiguracion:
		return "Configuración"
	default:
		return string(t)
	}
}
