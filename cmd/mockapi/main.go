package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/router"
)

func main() {
	addr := ":8081"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// DB_DSN del entorno => Postgres; si no, in-memory
	r := router.NewRouter(router.Options{Logger: logger.NewFromEnv()})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("starting mock api on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
