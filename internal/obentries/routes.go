package obentries

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/middleware"
)

func SetupRoutes(fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", ListOBEntries)
	r.Post("/", CreateOBEntry)
	r.Get("/{id}", GetOBEntry)
	r.Put("/{id}", UpdateOBEntry)
	r.Delete("/{id}", DeleteOBEntry)

	return r
}
