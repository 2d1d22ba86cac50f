// Package router arma el backend de desarrollo (mock de la API de la
// clínica) sobre chi.
//
// @title Vet Clinic mock API
// @version 1.0
// @description Backend de desarrollo con el contrato REST de la clínica veterinaria.
// @BasePath /api
package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	mem "vet-clinic-web/internal/adapters/storage/memory"
	pg "vet-clinic-web/internal/adapters/storage/postgres"
	"vet-clinic-web/internal/middleware"
	"vet-clinic-web/internal/mockapi"
	"vet-clinic-web/internal/mockapi/docs"
	"vet-clinic-web/internal/mockapi/store"
	"vet-clinic-web/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// DSN se usa si DB es nil; vacío => DB_DSN del entorno.
	DSN string

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "mockapi"})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	docs.SwaggerInfo.BasePath = "/api"

	svc := mockapi.NewService(openRepo(opts, log))
	r.Route("/api", func(api chi.Router) {
		mockapi.RegisterRoutes(api, svc, log)
	})

	return r
}

// openRepo elige el storage. Si Postgres no responde se sigue in-memory
// para que el backend de dev arranque igual.
func openRepo(opts Options, log logger.Logger) store.Repository {
	db := opts.DB
	if db == nil {
		dsn := opts.DSN
		if dsn == "" {
			dsn = os.Getenv("DB_DSN")
		}
		if dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres unavailable, using memory storage", map[string]any{"error": err})
			} else {
				db = opened
			}
		}
	}

	if db == nil {
		log.Info("storage: memory", nil)
		return mem.NewRecordsRepo()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pg.EnsureSchema(ctx, db); err != nil {
		log.Warn("postgres schema failed, using memory storage", map[string]any{"error": err})
		return mem.NewRecordsRepo()
	}

	log.Info("storage: postgres", nil)
	return pg.NewRecordsRepo(db)
}
