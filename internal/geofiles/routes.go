package geofiles

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/middleware"
)

func SetupRoutes(fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", ListGeofiles)
	r.Post("/", CreateGeofile)
	// Static segments must register ahead of the {id} wildcard.
	r.Get("/search/by-location", SearchByLocation)
	r.Get("/{id}", GetGeofile)
	r.Get("/{id}/download", DownloadGeofile)
	r.Put("/{id}", UpdateGeofile)
	r.Delete("/{id}", DeleteGeofile)
	r.Post("/{id}/link-case/{caseId}", LinkCase)
	r.Post("/{id}/add-tags", AddTags)

	return r
}
