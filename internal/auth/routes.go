package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/middleware"
)

func SetupRoutes(loginLimiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	sessionFetcher := SessionInfo{}

	r.With(loginLimiter.Middleware).Post("/login", LoginHandler)
	r.Post("/register", RegisterHandler)
	r.Post("/forgot-password", ForgotPasswordHandler)
	r.Post("/reset-password", ResetPasswordHandler)
	r.Post("/logout", LogoutHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Get("/me", MeHandler)
		r.Put("/profile", UpdateProfileHandler)
	})

	return r
}

// SetupUserRoutes serves the admin-only user management surface,
// mounted at /users.
func SetupUserRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := SessionInfo{}

	r.Use(middleware.SessionMiddleware(sessionFetcher))
	r.Use(middleware.AdminMiddleware())

	r.Get("/", ListUsersHandler)
	r.Delete("/{id}", DeleteUserHandler)

	return r
}
