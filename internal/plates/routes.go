package plates

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/middleware"
)

func SetupRoutes(fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", ListPlates)
	r.Post("/", CreatePlate)
	r.Get("/search/{plateNumber}", SearchPlate)
	r.Get("/{id}", GetPlate)
	r.Put("/{id}", UpdatePlate)
	r.Delete("/{id}", DeletePlate)

	return r
}
