package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sable-ink/inkwell/backend/internal/handlers"
	"github.com/sable-ink/inkwell/backend/internal/middleware"
	"github.com/sable-ink/inkwell/backend/internal/models"
	"github.com/sable-ink/inkwell/backend/internal/repositories"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *auth.Client, jwtSecret string) {
	// AutoMigrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Story{},
		&models.Chapter{},
		&models.Draft{},
		&models.Like{},
		&models.Notification{},
		&models.Highlight{},
		&models.Bookmark{},
		&models.Quote{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	storyRepo := repositories.NewPostgresStoryRepository(db)
	chapterRepo := repositories.NewPostgresChapterRepository(db)
	draftRepo := repositories.NewPostgresDraftRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	highlightRepo := repositories.NewPostgresHighlightRepository(db)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(db)
	quoteRepo := repositories.NewPostgresQuoteRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)

	storyHandler := handlers.NewStoryHandler(storyRepo)
	storyHandler.RegisterStoryRoutes(api)

	chapterHandler := handlers.NewChapterHandler(chapterRepo, storyRepo)
	chapterHandler.RegisterChapterRoutes(api)

	draftHandler := handlers.NewDraftHandler(draftRepo, storyRepo)
	draftHandler.RegisterDraftRoutes(api)

	feedHandler := handlers.NewFeedHandler(storyRepo)
	feedHandler.RegisterFeedRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo)
	likeHandler.RegisterLikeRoutes(api)

	highlightHandler := handlers.NewHighlightHandler(highlightRepo)
	highlightHandler.RegisterHighlightRoutes(api)

	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkRepo)
	bookmarkHandler.RegisterBookmarkRoutes(api)

	quoteHandler := handlers.NewQuoteHandler(quoteRepo)
	quoteHandler.RegisterQuoteRoutes(api)
	quoteHandler.RegisterPublicQuoteRoutes(e)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Println("All routes configured.")
}
