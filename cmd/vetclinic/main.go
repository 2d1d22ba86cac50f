// Command vetclinic sirve el front-end de la clínica veterinaria y, para
// desarrollo, el backend mock.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vet-clinic-web/internal/config"
	"vet-clinic-web/internal/platform/httpclient"
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/router"
	"vet-clinic-web/internal/web"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "vetclinic",
		Short:         "Front-end web de la clínica veterinaria",
		Long:          "Front-end web de la clínica veterinaria.\n\nVariables de entorno:\n" + config.Usage(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Archivo YAML de configuración (o CONFIG_PATH)")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Sirve el front-end contra API_BASE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mockapi",
		Short: "Sirve el backend de desarrollo (memoria o Postgres con DB_DSN)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serveMock(cmd.Context(), cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Imprime la versión",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vetclinic version %s (build: %s)\n", Version, BuildTime)
		},
	})

	return cmd
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := newLogger(cfg)

	api, err := httpclient.New(httpclient.Options{
		BaseURL:    cfg.APIBase,
		Timeout:    cfg.RequestTimeout,
		Logger:     log,
		Registerer: prometheus.DefaultRegisterer,
	})
	if err != nil {
		return err
	}

	h := web.NewRouter(web.Options{
		API:      api,
		Logger:   log,
		AppName:  "Clínica Veterinaria",
		ToastTTL: cfg.ToastTTL,

		SessionIdle: cfg.Sessions.Idle,
		MaxSessions: cfg.Sessions.Max,
	})

	log.Info("starting web", map[string]any{"addr": cfg.HTTP.Addr, "api_base": cfg.APIBase})
	return listen(ctx, cfg.HTTP.Addr, h, log)
}

func serveMock(ctx context.Context, cfg *config.Config) error {
	log := newLogger(cfg)
	h := router.NewRouter(router.Options{DSN: cfg.MockAPI.DSN, Logger: log})

	log.Info("starting mock api", map[string]any{"addr": cfg.MockAPI.Addr})
	return listen(ctx, cfg.MockAPI.Addr, h, log)
}

// listen corre el server hasta SIGINT/SIGTERM y hace shutdown ordenado.
func listen(ctx context.Context, addr string, h http.Handler, log logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		// un submit puede esperar hasta el deadline del gateway
		WriteTimeout: 2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
