package cases

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/middleware"
)

func SetupRoutes(fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", ListCases)
	r.Post("/", CreateCase)
	r.Get("/{id}", GetCase)
	r.Put("/{id}", UpdateCase)
	r.Delete("/{id}", DeleteCase)

	return r
}
