// Package web es la superficie HTTP del front-end: una página por tab,
// formularios con POST/redirect/GET y una sesión (app.App) por navegador.
package web

import (
	"net/http"
	"time"

	"vet-clinic-web/internal/app"
	"vet-clinic-web/internal/middleware"
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/ports/gateway"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	API      gateway.Requester
	Logger   logger.Logger
	AppName  string
	ToastTTL time.Duration

	// SessionIdle: 0 => middleware.DefaultSessionIdle.
	SessionIdle time.Duration
	// MaxSessions: 0 => middleware.DefaultMaxSessions.
	MaxSessions int

	// Registry para /metrics; nil => el registry default de prometheus.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

type server struct {
	log      logger.Logger
	appName  string
	toastTTL time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "web"})

	appName := opts.AppName
	if appName == "" {
		appName = "Clínica Veterinaria"
	}
	ttl := opts.ToastTTL
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	reg, gath := opts.Registerer, opts.Gatherer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if gath == nil {
		gath = prometheus.DefaultGatherer
	}

	s := &server{log: log, appName: appName, toastTTL: ttl}
	sessions := middleware.NewSessions(func() *app.App {
		return app.New(app.Options{API: opts.API, Logger: log, ToastTTL: ttl})
	}, opts.SessionIdle, opts.MaxSessions)

	registerOrReuse(reg, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "vetclinic",
		Subsystem: "web",
		Name:      "sessions",
		Help:      "Browser sessions held in memory.",
	}, func() float64 { return float64(sessions.Len()) }))

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(log))
	r.Use(instrument(reg))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gath, promhttp.HandlerOpts{}))

	r.Group(func(ui chi.Router) {
		ui.Use(middleware.Session(sessions))

		ui.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/tabs/"+string(app.TabAnimales), http.StatusFound)
		})
		ui.Get("/tabs/{tab}", s.showTab)

		ui.Route("/r/{resource}", func(rr chi.Router) {
			rr.Post("/submit", s.submit)
			rr.Post("/cancel", s.cancel)
			rr.Post("/delete/confirm", s.confirmDelete)
			rr.Post("/delete/abort", s.abortDelete)
			rr.Post("/{id}/edit", s.edit)
			rr.Post("/{id}/delete", s.requestDelete)
		})

		ui.Get("/animales/razas", s.breedOptions)
		ui.Get("/animales/{id}/historia", s.openHistory)
		ui.Post("/animales/{id}/historia", s.saveHistory)
		ui.Post("/historia/close", s.closeHistory)

		ui.Post("/toasts/{id}/dismiss", s.dismissToast)
	})

	return r
}
