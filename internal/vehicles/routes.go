package vehicles

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/middleware"
)

func SetupRoutes(fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", ListVehicles)
	r.Post("/", CreateVehicle)
	r.Get("/{id}", GetVehicle)
	r.Put("/{id}", UpdateVehicle)
	r.Delete("/{id}", DeleteVehicle)
	r.Patch("/{id}/location", PatchLocation)
	r.Patch("/{id}/status", PatchStatus)

	return r
}
