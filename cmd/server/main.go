package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/config"
	"github.com/fadilmartias/apostila-analyzer/internal/domain/fiber/handler"
	"github.com/fadilmartias/apostila-analyzer/internal/middleware"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/fadilmartias/apostila-analyzer/internal/repository"
	"github.com/fadilmartias/apostila-analyzer/internal/service"
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	llmConfig := config.LoadLLMConfig()
	authConfig := config.LoadAuthConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// room for the multipart envelope around the largest accepted file
		BodyLimit: int(appConfig.UploadMaxBytes) + 1024*1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return util.ErrorResponse(ctx, util.ErrorResponseFormat{Code: code, Message: message}, err)
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: appConfig.FrontendOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	// Use middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	// one budget for every model call the process makes
	limiter := rate.NewLimiter(rate.Limit(llmConfig.RequestsPerSecond), llmConfig.Burst)
	generator, gemini, err := service.NewGenerator(ctx, limiter)
	if err != nil {
		log.Fatal(err)
	}
	var embedder usecase.Embedder
	if gemini != nil {
		embedder = gemini
	} else {
		log.Println("Warning: GEMINI_API_KEY not set, ementa recommendations are disabled")
	}

	reportRepo := repository.NewReportRepository(db)
	userRepo := repository.NewUserRepository(db)
	ementaRepo := repository.NewEmentaRepository(db)

	links := service.NewLinkVettingService(appConfig.LinkCacheTTL, nil)
	tokens := util.NewTokenManager(authConfig.JWTSecret, authConfig.TokenTTL)

	evalUC := usecase.NewEvaluationUsecase(generator, links, reportRepo, ementaRepo, util.ExtractDocumentText)

	api := app.Group("/api")
	auth := middleware.Protected(tokens)
	admin := middleware.RequireRole(model.RoleAdmin)

	handler.NewAuthHandler(usecase.NewAuthUsecase(userRepo, tokens)).RegisterRoutes(api)
	handler.NewEvaluationHandler(evalUC, appConfig.UploadMaxBytes, appConfig.EvaluationsPerMinute).RegisterRoutes(api, auth)
	handler.NewCorrectionHandler(usecase.NewCorrectionUsecase(generator, service.NewExportService())).RegisterRoutes(api, auth)
	handler.NewReportHandler(usecase.NewReportUsecase(reportRepo)).RegisterRoutes(api, auth)
	handler.NewEmentaHandler(usecase.NewEmentaUsecase(ementaRepo, embedder, util.ExtractDocumentText), appConfig.UploadMaxBytes).RegisterRoutes(api, auth, admin)
	handler.NewAdminHandler(usecase.NewAdminUsecase(reportRepo)).RegisterRoutes(api, auth, admin)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}

	// reports still being saved in the background
	evalUC.Drain()
	log.Println("Server stopped")
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	for _, ext := range []string{"vector", `"uuid-ossp"`} {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS " + ext).Error; err != nil {
			log.Fatalf("could not enable extension %s: %v", ext, err)
		}
	}

	err = db.AutoMigrate(&model.User{}, &model.Report{}, &model.Ementa{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
