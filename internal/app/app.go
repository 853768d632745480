package app

import (
	"log"
	"net/http"
	"time"

	"costindex/go_backend/internal/app/config"
	apphttp "costindex/go_backend/internal/app/http"
	"costindex/go_backend/internal/domain/basket"
	"costindex/go_backend/internal/infra/store/memory"
	"costindex/go_backend/internal/infra/store/postgres"
)

func Run() {
	cfg := config.MustLoad()

	var store basket.Store
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pg.Close()
		store = pg
		log.Printf("basket store: postgres")
	} else {
		store = memory.New()
		log.Printf("basket store: in-memory")
	}

	router := apphttp.NewRouter(cfg, store)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
