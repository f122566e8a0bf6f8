package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/cafemine/mine-backend/internal/config"
	"github.com/cafemine/mine-backend/internal/database"
	"github.com/cafemine/mine-backend/internal/logger"
	"github.com/cafemine/mine-backend/internal/repository"
	"github.com/cafemine/mine-backend/internal/service"
	"golang.org/x/term"
)

// Seeds (or re-seeds) the single admin account. Running it again for the same
// email rotates the stored password hash.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Services ───────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(repository.NewAdminRepository(pool))

	// ─── CLI Input ─────────────────────────────────────────────────────
	// ADMIN_EMAIL / ADMIN_PASSWORD in the environment skip the prompts so
	// the seed can run non-interactively in deploy scripts.
	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Seed Admin Account ===")

	if email == "" {
		fmt.Print("Enter Email: ")
		email, _ = reader.ReadString('\n')
		email = strings.TrimSpace(email)
		if email == "" {
			fmt.Println("Error: Email is required")
			return
		}
	}

	if password == "" {
		fmt.Print("Enter Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			fmt.Println("\nError reading password")
			return
		}
		password = string(bytePassword)
		fmt.Println() // Newline after password input
	}
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	admin, err := adminService.Seed(ctx, email, hash)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}

	fmt.Printf("\nAdmin account ready: %s (ID: %d)\n", admin.Email, admin.ID)
}
