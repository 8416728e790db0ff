package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/sable-ink/inkwell/backend/internal/router"
	"github.com/sable-ink/inkwell/backend/pkg/config"
	"github.com/sable-ink/inkwell/backend/pkg/firebase"
	"github.com/sable-ink/inkwell/backend/pkg/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase (the identity provider)
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, firebaseApp.AuthClient, cfg.JWTSecret)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
