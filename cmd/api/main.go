package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-reporter/pkg/validator"

	"github.com/johnquangdev/meeting-reporter/internal/adapter/handler"
	"github.com/johnquangdev/meeting-reporter/internal/usecase/classifier"
	"github.com/johnquangdev/meeting-reporter/internal/usecase/pipeline"
	pkgai "github.com/johnquangdev/meeting-reporter/pkg/ai"
	"github.com/johnquangdev/meeting-reporter/pkg/config"
	"github.com/johnquangdev/meeting-reporter/pkg/logger"
	pkgmw "github.com/johnquangdev/meeting-reporter/pkg/middleware"
)

// @title           Meeting Reporter API
// @version         1.0
// @description     Turns meeting transcripts into Markdown reports with a summary, key decisions, action items and supplementary entities.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())
	e.Use(pkgmw.ZapRequestLogger(zapLogger))

	// Recover from panics
	e.Use(middleware.Recover())

	// Reject oversized uploads before multipart parsing; the margin covers form overhead
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", cfg.Upload.MaxBytes/1024+64)))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	ctx := context.Background()

	log.Printf("🤖 Initializing %s generator...", cfg.LLM.Provider)
	gen, err := pkgai.NewGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}

	reportService := pipeline.NewService(gen, &cfg.Pipeline, zapLogger)

	var meetingClassifier classifier.Classifier
	if cfg.Validator.Enabled {
		log.Println("🔎 Initializing meeting-content classifier...")
		clsGen, err := pkgai.NewGeneratorWithTemperature(ctx, cfg, cfg.Validator.Temperature)
		if err != nil {
			log.Fatalf("Failed to initialize classifier generator: %v", err)
		}
		meetingClassifier = classifier.New(clsGen, cfg.Validator.MinLength, zapLogger)
	}

	reportHandler := handler.NewReportHandler(reportService, meetingClassifier, cfg.Upload.MaxBytes, zapLogger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, gen.Model(), reportHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)
		log.Printf("📚 Swagger UI: http://%s/swagger/index.html", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
