package auth

import (
	"log"
	"time"

	"github.com/sudeys05/police-system/internal/db"
)

// Options carries the auth-relevant slice of the server config.
type Options struct {
	SessionTTL    time.Duration
	ResetTokenTTL time.Duration
	CookieSecure  bool
}

var (
	sessionTTL    = 6 * time.Hour
	resetTokenTTL = 15 * time.Minute
	cookieSecure  = false
)

func Init(opts Options) {
	if opts.SessionTTL > 0 {
		sessionTTL = opts.SessionTTL
	}
	if opts.ResetTokenTTL > 0 {
		resetTokenTTL = opts.ResetTokenTTL
	}
	cookieSecure = opts.CookieSecure

	if err := db.DB.AutoMigrate(&User{}, &Session{}, &PasswordReset{}); err != nil {
		log.Fatal("Failed to auto-migrate auth tables: ", err)
	}
}
