// Package config carga la configuración desde un YAML opcional más
// variables de entorno (las variables pisan al archivo).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	AppName string `yaml:"app_name" env:"APP_NAME" env-default:"vet-clinic-web"`

	// API_BASE es la base de la API de la clínica (incluye /api).
	APIBase        string        `yaml:"api_base" env:"API_BASE" env-default:"http://localhost:8081/api"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"30s"`
	ToastTTL       time.Duration `yaml:"toast_ttl" env:"TOAST_TTL" env-default:"5s"`

	HTTP     HTTPServer `yaml:"http"`
	Log      Log        `yaml:"log"`
	Sessions Sessions   `yaml:"sessions"`
	MockAPI  MockAPI    `yaml:"mockapi"`
}

type HTTPServer struct {
	Addr string `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Sessions limita las sesiones del front-end guardadas en memoria.
type Sessions struct {
	Idle time.Duration `yaml:"idle" env:"SESSION_IDLE" env-default:"12h"`
	Max  int           `yaml:"max" env:"SESSION_MAX" env-default:"1000"`
}

// MockAPI configura el backend de desarrollo.
type MockAPI struct {
	Addr string `yaml:"addr" env:"MOCKAPI_ADDR" env-default:":8081"`

	// DSN de Postgres; vacío => almacenamiento en memoria.
	DSN string `yaml:"db_dsn" env:"DB_DSN"`
}

// Load lee path (si no es vacío) y aplica el entorno. Sin path usa sólo
// entorno y defaults. CONFIG_PATH se usa si path viene vacío.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.APIBase == "" {
		return errors.New("config: api_base is required")
	}
	if _, err := url.ParseRequestURI(c.APIBase); err != nil {
		return fmt.Errorf("config: invalid api_base: %w", err)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: request_timeout must be positive")
	}
	if c.Sessions.Max < 0 {
		return errors.New("config: sessions.max must not be negative")
	}
	return nil
}

// Usage devuelve la ayuda de variables de entorno (para --help).
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
