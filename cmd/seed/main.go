package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the protected admin account (fixed ID "1") and, with --samples,
// a couple of demo officer accounts. Expects the server to have run its
// migrations at least once so the users table exists.

var (
	dsn           = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
	adminUsername = flag.String("admin-username", "admin", "Username for the protected admin account")
	adminEmail    = flag.String("admin-email", "admin@police.local", "Email for the protected admin account")
	adminPassword = flag.String("admin-password", os.Getenv("ADMIN_PASSWORD"), "Password for the protected admin account (default: env ADMIN_PASSWORD)")
	withSamples   = flag.Bool("samples", false, "Also seed demo officer accounts")
	dryRun        = flag.Bool("dry-run", false, "Print the plan; no DB writes")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}
	if *adminPassword == "" {
		fatalf("--admin-password not provided and ADMIN_PASSWORD not set")
	}

	if *dryRun {
		fmt.Printf("Would upsert admin %q <%s> as user 1\n", *adminUsername, *adminEmail)
		if *withSamples {
			fmt.Println("Would upsert demo officers jkamau, awanjiru")
		}
		fmt.Println("Dry run complete. No changes made.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fatalf("ping: %v", err)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		fatalf("begin tx: %v", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op if already committed
	}()

	if err := upsertUser(ctx, tx, "1", *adminUsername, *adminEmail, *adminPassword, "System", "Admin", "HQ-0001", "admin"); err != nil {
		fatalf("seed admin: %v", err)
	}
	fmt.Printf("Upserted admin %q as user 1\n", *adminUsername)

	if *withSamples {
		samples := []struct {
			id, username, email, first, last, badge string
		}{
			{"demo-officer-1", "jkamau", "jkamau@police.local", "John", "Kamau", "PT-1042"},
			{"demo-officer-2", "awanjiru", "awanjiru@police.local", "Alice", "Wanjiru", "PT-1187"},
		}
		for _, s := range samples {
			if err := upsertUser(ctx, tx, s.id, s.username, s.email, "ChangeMe123!", s.first, s.last, s.badge, "user"); err != nil {
				fatalf("seed %s: %v", s.username, err)
			}
		}
		fmt.Printf("Upserted %d demo officers\n", len(samples))
	}

	if err := tx.Commit(); err != nil {
		fatalf("commit: %v", err)
	}
	fmt.Println("Seed complete")
}

func upsertUser(ctx context.Context, tx *sql.Tx, id, username, email, password, first, last, badge, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, username, email, hashed_password, first_name, last_name, badge_number, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			hashed_password = EXCLUDED.hashed_password,
			role = EXCLUDED.role,
			is_active = TRUE,
			updated_at = NOW()
	`, id, username, email, string(hash), first, last, badge, role)
	return err
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
