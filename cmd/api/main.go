package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/natnaelw/vendora/internal/handler/http"
	redisclient "github.com/natnaelw/vendora/internal/infrastructure/cache"
	"github.com/natnaelw/vendora/internal/infrastructure/config"
	database "github.com/natnaelw/vendora/internal/infrastructure/database"
	"github.com/natnaelw/vendora/internal/infrastructure/jwt"
	"github.com/natnaelw/vendora/internal/infrastructure/logger"
	passwordservice "github.com/natnaelw/vendora/internal/infrastructure/password_service"
	"github.com/natnaelw/vendora/internal/infrastructure/repository/mongodb"
	"github.com/natnaelw/vendora/internal/infrastructure/store"
	"github.com/natnaelw/vendora/internal/infrastructure/uuidgen"
	"github.com/natnaelw/vendora/internal/infrastructure/validator"
	"github.com/natnaelw/vendora/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	commentUsecase := usecase.NewCommentUseCase(commentRepo, productRepo, userRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		commentUsecase.SetThreadCache(store.NewThreadCacheStore(rdb))
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, commentUsecase, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
