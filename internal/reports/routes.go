package reports

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/middleware"
)

func SetupRoutes(fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", ListReports)
	r.Post("/", CreateReport)
	r.Get("/{id}", GetReport)
	r.Put("/{id}", UpdateReport)
	r.Delete("/{id}", DeleteReport)

	return r
}
