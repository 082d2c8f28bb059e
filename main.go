package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/sudeys05/police-system/internal/auth"
	"github.com/sudeys05/police-system/internal/cases"
	"github.com/sudeys05/police-system/internal/config"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/evidence"
	"github.com/sudeys05/police-system/internal/geofiles"
	"github.com/sudeys05/police-system/internal/middleware"
	"github.com/sudeys05/police-system/internal/obentries"
	"github.com/sudeys05/police-system/internal/plates"
	"github.com/sudeys05/police-system/internal/reports"
	"github.com/sudeys05/police-system/internal/vehicles"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db.Connect(cfg.DatabaseURL)

	auth.Init(auth.Options{
		SessionTTL:    cfg.SessionTTL,
		ResetTokenTTL: cfg.ResetTokenTTL,
		CookieSecure:  cfg.CookieSecure,
	})
	cases.Init()
	obentries.Init()
	plates.Init()
	evidence.Init()
	geofiles.Init()
	reports.Init()
	vehicles.Init()

	// Login attempts throttle per client IP; the rest of the surface is
	// gated by sessions instead.
	loginLimiter := middleware.NewRateLimiter(rate.Every(time.Second), 5)

	sessionFetcher := auth.SessionInfo{}

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes(loginLimiter))
	r.Mount("/users", auth.SetupUserRoutes())
	r.Mount("/cases", cases.SetupRoutes(sessionFetcher))
	r.Mount("/ob-entries", obentries.SetupRoutes(sessionFetcher))
	r.Mount("/license-plates", plates.SetupRoutes(sessionFetcher))
	r.Mount("/evidence", evidence.SetupRoutes(sessionFetcher))
	r.Mount("/geofiles", geofiles.SetupRoutes(sessionFetcher))
	r.Mount("/reports", reports.SetupRoutes(sessionFetcher))
	r.Mount("/police-vehicles", vehicles.SetupRoutes(sessionFetcher))

	fmt.Printf("Server listening on port :%s...\n", cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
