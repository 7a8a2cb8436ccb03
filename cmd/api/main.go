package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	activityHttp "gym-dashboard-service/internal/activity/adapters/http/fiber"
	activityRepoPg "gym-dashboard-service/internal/activity/adapters/postgres"
	activityUsecase "gym-dashboard-service/internal/activity/core/usecase"

	authHttp "gym-dashboard-service/internal/auth/adapters/http/fiber"
	authRepoPg "gym-dashboard-service/internal/auth/adapters/postgres"
	"gym-dashboard-service/internal/auth/adapters/roster"
	authUsecase "gym-dashboard-service/internal/auth/core/usecase"

	"gym-dashboard-service/internal/dataset/adapters/csvhttp"
	datasetHttp "gym-dashboard-service/internal/dataset/adapters/http/fiber"
	datasetDomain "gym-dashboard-service/internal/dataset/core/domain"
	datasetUsecase "gym-dashboard-service/internal/dataset/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "gym-dashboard-service/docs"
)

// @title Gym Dashboard Service API
// @version 1.0
// @description Dataset aggregation, credential auth and activity logging for the gym analytics dashboard
// @BasePath /api
func main() {
	// Config
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}
	gymURL := os.Getenv("GYM_CSV_URL")
	if gymURL == "" {
		log.Fatal("GYM_CSV_URL is not set")
	}
	healthURL := os.Getenv("HEALTH_CSV_URL")
	if healthURL == "" {
		log.Fatal("HEALTH_CSV_URL is not set")
	}
	rosterPath := os.Getenv("ROSTER_CSV_PATH")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// DB connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	authDB := authRepoPg.NewSQLDB(db)
	activityDB := activityRepoPg.NewSQLDB(db)

	// Repositories
	credentialRepository := authRepoPg.NewCredentialRepository(authDB)
	activityRepository := activityRepoPg.NewActivityRepository(activityDB)

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSchema()
	if err := credentialRepository.EnsureSchema(schemaCtx); err != nil {
		log.Fatalf("failed to ensure users schema: %v", err)
	}
	if err := activityRepository.EnsureSchema(schemaCtx); err != nil {
		log.Fatalf("failed to ensure activity_logs schema: %v", err)
	}

	// Usecases
	recordActivityUC := activityUsecase.NewRecordActivityUseCase(activityRepository)
	recentLogsUC := activityUsecase.NewGetRecentLogsUseCase(activityRepository)

	loginUC := authUsecase.NewLoginUseCase(credentialRepository, recordActivityUC)
	checkAuthUC := authUsecase.NewCheckAuthUseCase(credentialRepository)

	registry := datasetDomain.NewRegistry(gymURL, healthURL)
	source := csvhttp.NewSource(&http.Client{})
	summaryUC := datasetUsecase.NewGetSummaryUseCase(registry, source)
	flagCountsUC := datasetUsecase.NewGetFlagCountsUseCase(registry, source)
	sleepByAgeUC := datasetUsecase.NewGetSleepByAgeUseCase(registry, source)
	memberProfileUC := datasetUsecase.NewGetMemberProfileUseCase(registry, source)

	// Seed credentials from the membership roster. Safe to re-run: a
	// populated users table turns it into a no-op.
	if rosterPath != "" {
		seedUC := authUsecase.NewSeedUsersUseCase(credentialRepository, roster.NewCSVRoster(rosterPath))

		seedCtx, cancelSeed := context.WithTimeout(context.Background(), time.Minute)
		res, err := seedUC.Execute(seedCtx)
		cancelSeed()
		if err != nil {
			log.Printf("credential seeding failed: %v", err)
		} else if res.Created > 0 || res.Skipped > 0 {
			log.Printf("seeded credentials: %d created, %d skipped", res.Created, res.Skipped)
		}
	}

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	})

	// auth endpoints
	authHandler := authHttp.NewAuthHandler(loginUC, checkAuthUC, recordActivityUC)
	app.Post("/api/login", authHandler.Login)
	app.Post("/api/check-auth", authHandler.CheckAuth)
	app.Post("/api/logout", authHandler.Logout)
	app.Get("/api/health", authHandler.Health)

	// activity endpoints
	activityHandler := activityHttp.NewActivityHandler(recentLogsUC)
	app.Get("/api/activity-logs", activityHandler.GetActivityLogs)

	// dataset endpoints; static paths registered before the :key route
	datasetHandler := datasetHttp.NewDatasetHandler(registry, summaryUC, flagCountsUC, sleepByAgeUC, memberProfileUC)
	app.Get("/api/datasets/gym/classes", datasetHandler.GetClassPreferences)
	app.Get("/api/datasets/gym/drinks", datasetHandler.GetDrinkPreferences)
	app.Get("/api/datasets/health/sleep-by-age", datasetHandler.GetSleepByAge)
	app.Get("/api/datasets/:key/summary", datasetHandler.GetSummary)
	app.Get("/api/members/:id", datasetHandler.GetMemberProfile)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
