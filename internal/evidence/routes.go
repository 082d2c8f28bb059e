package evidence

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/middleware"
)

func SetupRoutes(fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", ListEvidence)
	r.Post("/", CreateEvidence)
	r.Get("/{id}", GetEvidence)
	r.Put("/{id}", UpdateEvidence)
	r.Delete("/{id}", DeleteEvidence)

	return r
}
