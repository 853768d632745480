package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"costindex/go_backend/internal/app/config"
	"costindex/go_backend/internal/app/http/handlers"
	"costindex/go_backend/internal/app/http/middleware"
	"costindex/go_backend/internal/domain/basket"
)

func NewRouter(cfg config.Config, store basket.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	h := handlers.New(cfg, store)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Endpoints)
		r.Get("/ping", h.Ping)
		r.Get("/test-openai", h.TestOpenAI)

		r.Post("/chat", h.Chat)
		r.Post("/alternatives", h.Alternatives)
		r.Post("/analyze-product", h.AnalyzeProduct)
		r.Post("/analyze", h.Analyze)
		r.Post("/analyze-basket", h.AnalyzeBasket)

		r.Route("/basket-items", func(r chi.Router) {
			r.Get("/", h.ListBasketItems)
			r.Post("/", h.CreateBasketItem)
			r.Get("/export", h.ExportBasketItems)
			r.Get("/{id:[0-9]+}", h.GetBasketItem)
			r.Put("/{id:[0-9]+}", h.UpdateBasketItem)
			r.Delete("/{id:[0-9]+}", h.DeleteBasketItem)
		})

		r.Post("/auth/signup", h.Signup)
		r.Post("/auth/login", h.Login)
		r.Get("/db/health", h.DBHealth)

		r.Post("/tags", h.FetchTags)
		r.Post("/generate-description", h.GenerateDescription)
	})

	return r
}
