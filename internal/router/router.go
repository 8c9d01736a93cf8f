package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/convoforge/backend/internal/handlers"
	"github.com/convoforge/backend/internal/middleware"
	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
	"github.com/convoforge/backend/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil when Firebase is not configured.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Reaction{},
		&models.Conversation{},
		&models.Message{},
		&models.ConversationFork{},
		&models.Follow{},
		&models.Tag{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	reactionRepo := repositories.NewPostgresReactionRepository(pgdb)
	conversationRepo := repositories.NewPostgresConversationRepository(pgdb)
	forkRepo := repositories.NewPostgresForkRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	tagRepo := repositories.NewPostgresTagRepository(pgdb)
	analyticsRepo := repositories.NewMongoAnalyticsRepository(mgClient.Database("convoforge"))

	// --- Services ---
	reactionService := services.NewReactionService(reactionRepo, postRepo, commentRepo)
	forkService := services.NewForkService(postRepo, conversationRepo, forkRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, tagRepo, forkRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	reactionHandler := handlers.NewReactionHandler(reactionService)
	reactionHandler.RegisterReactionRoutes(api)
	log.Println("Reaction routes configured.")

	conversationHandler := handlers.NewConversationHandler(conversationRepo, postRepo, tagRepo, forkService)
	conversationHandler.RegisterConversationRoutes(api)
	log.Println("Conversation and fork routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	feedHandler := handlers.NewFeedHandler(postRepo, followRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	tagHandler := handlers.NewTagHandler(tagRepo, postRepo)
	tagHandler.RegisterTagRoutes(api)
	log.Println("Tag routes configured.")

	analyticsHandler := handlers.NewAnalyticsHandler(analyticsRepo, postRepo)
	analyticsHandler.RegisterAnalyticsRoutes(api)
	log.Println("Analytics routes configured.")

	log.Println("All routes configured.")
}
