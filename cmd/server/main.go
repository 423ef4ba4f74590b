package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/auditx/auditx/internal/adapter/ai"
	httpadapter "github.com/auditx/auditx/internal/adapter/http"
	"github.com/auditx/auditx/internal/adapter/mail"
	"github.com/auditx/auditx/internal/adapter/pdf"
	"github.com/auditx/auditx/internal/adapter/persistence"
	"github.com/auditx/auditx/internal/adapter/storage"
	"github.com/auditx/auditx/internal/catalog"
	"github.com/auditx/auditx/internal/config"
	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/internal/service/jwtauth"
	"github.com/auditx/auditx/internal/service/logger"
	"github.com/auditx/auditx/internal/service/password"
	"github.com/auditx/auditx/internal/usecase"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	structuredLogger := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "auditx",
	})
	structuredLogger.Info(ctx, "application starting", map[string]interface{}{
		"env": cfg.Server.Environment,
	})

	// Database
	db, err := sql.Open("postgres", cfg.GetDatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxConns)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		log.Fatalf("Failed to ping database: %v", err)
	}
	cancel()
	structuredLogger.Info(ctx, "database connection established", nil)

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	// Catalog
	cat := catalog.Default()

	// Repositories
	userRepo := persistence.NewPostgresUserRepository(db)
	companyRepo := persistence.NewPostgresCompanyRepository(db)
	auditRepo := persistence.NewPostgresAuditRepository(db)
	analysisRepo := persistence.NewPostgresAnalysisRepository(db)
	resetTokens := persistence.NewRedisResetTokenStore(redisClient)
	loginLimiter := persistence.NewRedisLoginLimiter(redisClient, cfg.Security.LoginAttempts, cfg.Security.LoginWindow)

	// Services
	tokenService := jwtauth.NewJWTService(cfg.Security.JWTSecret, cfg.Security.JWTExpiration)
	passwordService := password.NewBcryptPasswordService(cfg.Security.BcryptCost)
	mailer := mail.NewLogMailer(structuredLogger)

	var generator ports.NarrativeGenerator
	if cfg.AI.Provider == "openai" {
		generator = ai.NewOpenAIGenerator(cfg.AI.APIKey, cfg.AI.Model)
	} else {
		generator = ai.NewMockGenerator()
		structuredLogger.Warn(ctx, "using mock narrative generator", nil)
	}

	var fileStore ports.FileStore
	if cfg.Storage.Enabled {
		fileStore, err = storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  cfg.Storage.Endpoint,
			Region:    cfg.Storage.Region,
			Bucket:    cfg.Storage.Bucket,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
	}

	// Use cases
	authUseCase := usecase.NewAuthUseCase(
		userRepo, companyRepo, passwordService, tokenService,
		resetTokens, mailer, loginLimiter,
		usecase.AuthConfig{
			SuperadminEmail:   cfg.Superadmin.Email,
			PasswordMinLength: cfg.Security.PasswordMinLength,
			ResetBaseURL:      cfg.Server.ResetBaseURL,
		},
		structuredLogger,
	)
	companyUseCase := usecase.NewCompanyUseCase(companyRepo, userRepo, mailer, structuredLogger)
	auditUseCase := usecase.NewAuditUseCase(auditRepo, companyRepo, analysisRepo, cat, structuredLogger)
	analysisUseCase := usecase.NewAnalysisUseCase(
		auditRepo, companyRepo, analysisRepo, generator, pdf.NewRenderer(), cat, structuredLogger,
	)

	if err := seedSuperadmin(ctx, userRepo, passwordService, cfg, structuredLogger); err != nil {
		log.Fatalf("Failed to seed superadmin: %v", err)
	}

	server := httpadapter.NewServer(
		httpadapter.ServerConfig{
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		httpadapter.Dependencies{
			AuthUseCase:     authUseCase,
			CompanyUseCase:  companyUseCase,
			AuditUseCase:    auditUseCase,
			AnalysisUseCase: analysisUseCase,
			Tokens:          tokenService,
			Files:           fileStore,
			Catalog:         cat,
			Logger:          structuredLogger,
		},
	)

	go func() {
		if err := server.Start(); err != nil {
			structuredLogger.Error(ctx, "http server stopped", err, nil)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "graceful shutdown failed", err, nil)
	}
	structuredLogger.Info(ctx, "application stopped", nil)
}

// seedSuperadmin creates the administrator account at startup when it
// does not exist yet. Without it nobody can activate registered
// clients.
func seedSuperadmin(ctx context.Context, users ports.UserRepository, passwords ports.PasswordService, cfg *config.Config, log logger.Logger) error {
	if cfg.Superadmin.Password == "" {
		log.Warn(ctx, "superadmin password not set, skipping seed", nil)
		return nil
	}

	if _, err := users.FindByEmail(ctx, cfg.Superadmin.Email); err == nil {
		return nil
	} else if !domain.IsNotFound(err) {
		return err
	}

	hash, err := passwords.HashPassword(cfg.Superadmin.Password)
	if err != nil {
		return err
	}

	admin := domain.NewUser(cfg.Superadmin.Email, hash, domain.RoleSuperadmin)
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Info(ctx, "superadmin seeded", map[string]interface{}{"email": cfg.Superadmin.Email})
	return nil
}
