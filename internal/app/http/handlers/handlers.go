package handlers

import (
	"net/http"
	"time"

	"costindex/go_backend/internal/app/config"
	"costindex/go_backend/internal/app/http/handlers/assist"
	"costindex/go_backend/internal/domain/basket"
	"costindex/go_backend/internal/domain/basket/pdf"
	basketpdf "costindex/go_backend/internal/domain/basket/pdf/gofpdf"
	"costindex/go_backend/internal/infra/rapidapi"
	"costindex/go_backend/internal/infra/suggest"
	"costindex/go_backend/internal/infra/supabase"
)

type Handlers struct {
	Cfg      config.Config
	Store    basket.Store
	AI       *assist.Service
	Supabase *supabase.Client
	Suggest  *suggest.Client
	RapidAPI *rapidapi.Client
	PDF      pdf.Generator
}

func New(cfg config.Config, store basket.Store) *Handlers {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}
	return &Handlers{
		Cfg:      cfg,
		Store:    store,
		AI:       assist.NewService(assist.NewClient(cfg, httpClient)),
		Supabase: supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey, httpClient),
		Suggest:  suggest.New(cfg.SuggestBaseURL, httpClient),
		RapidAPI: rapidapi.New(cfg.RapidAPIHost, cfg.RapidAPIKey, httpClient),
		PDF:      basketpdf.New(),
	}
}
