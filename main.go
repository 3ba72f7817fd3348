package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkbio/internal/handlers"
	"linkbio/internal/middleware"
	"linkbio/internal/models"
	"linkbio/internal/repositories"
	"linkbio/internal/services"
	"linkbio/pkg/blobstore"
	"linkbio/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "") // Empty DSN falls back to a local SQLite file
	viper.SetDefault("JWT_SECRET", "your_jwt_secret")
	viper.SetDefault("RABBITMQ_URL", "") // Empty URL disables the click event stream
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	uploadDir := viper.GetString("UPLOAD_DIR")

	// --- Initialize Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := autoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize Blob Store ---
	blobs, err := blobstore.NewLocalStore(uploadDir, "/uploads")
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	var publisher services.EventPublisher
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; click event publishing disabled")
	}

	// --- Initialize App ---
	app := buildApp(db, blobs, publisher, jwtSecret, uploadDir)

	// --- Start Click Event Consumer ---
	// Placeholder consumer: logs accepted click events. Real consumers
	// (notifications, warehouse export) would replace this handler.
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for click events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received click event (%s): %s", msg.Type, string(msg.Body))
			return nil // Return nil to acknowledge
		}
		if consumerErr := mqClient.ConsumeClickEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase connects to PostgreSQL when a DSN is configured and falls
// back to a local SQLite file otherwise.
func openDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return gorm.Open(sqlite.Open("linkbio.db"), &gorm.Config{})
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// autoMigrate creates or updates the schema for every model.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Link{},
		&models.ClickEvent{},
		&models.CTAClick{},
		&models.Profile{},
		&models.Username{},
	)
}

// buildApp wires repositories, services and handlers into a Fiber app.
func buildApp(db *gorm.DB, blobs blobstore.Store, publisher services.EventPublisher, jwtSecret, uploadDir string) *fiber.App {
	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	linkRepo := repositories.NewGORMLinkRepository(db)
	ctaRepo := repositories.NewGORMCTARepository(db)
	profileRepo := repositories.NewGORMProfileRepository(db)
	usernameRepo := repositories.NewGORMUsernameRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, profileRepo, jwtSecret)
	linkService := services.NewLinkService(linkRepo)
	clickService := services.NewClickService(linkRepo, ctaRepo, publisher)
	analyticsService := services.NewAnalyticsService(linkRepo, ctaRepo)
	profileService := services.NewProfileService(profileRepo, usernameRepo, userRepo, linkRepo, blobs)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	linkHandler := handlers.NewLinkHandler(linkService)
	clickHandler := handlers.NewClickHandler(clickService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	profileHandler := handlers.NewProfileHandler(profileService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())

	// Uploaded profile images are served as static files.
	app.Static("/uploads", uploadDir)

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public routes: signup/login, click recording, public page view.
	authHandler.RegisterRoutes(apiV1)
	clickHandler.RegisterRoutes(apiV1)
	profileHandler.RegisterRoutes(apiV1)

	// Protected routes (require JWT authentication)
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protectedRoutes)
	linkHandler.RegisterRoutes(protectedRoutes)
	analyticsHandler.RegisterRoutes(protectedRoutes)
	profileHandler.RegisterProtectedRoutes(protectedRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
