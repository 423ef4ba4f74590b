package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/auditx/auditx/internal/adapter/persistence"
	"github.com/auditx/auditx/internal/config"
	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/service/password"
)

// createadmin creates a superadmin account directly in the database.
// Usage: createadmin <email> <password>
func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if len(os.Args) < 3 {
		log.Fatal("Usage: createadmin <email> <password>")
	}
	email := os.Args[1]
	adminPassword := os.Args[2]

	db, err := sql.Open("postgres", cfg.GetDatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	userRepo := persistence.NewPostgresUserRepository(db)

	if existing, err := userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Fatalf("User %s already exists", email)
	}

	passwordService := password.NewBcryptPasswordService(cfg.Security.BcryptCost)
	hash, err := passwordService.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := domain.NewUser(email, hash, domain.RoleSuperadmin)
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	fmt.Printf("Superadmin created: %s (%s)\n", admin.Email, admin.ID)
}
