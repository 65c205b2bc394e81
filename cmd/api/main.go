// @title CareerFit Assessment API
// @version 1.0
// @description Career fit quiz service: quiz sets, scoring, fit evaluation and recruitment screens.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
// @securityDefinitions.basic BasicAuth
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"careerfit/internal/adapter"
	"careerfit/internal/adapter/quizgen"
	"careerfit/internal/cache"
	"careerfit/internal/config"
	"careerfit/internal/database"
	"careerfit/internal/handler"
	"careerfit/internal/logger"
	"careerfit/internal/middleware"
	"careerfit/internal/repository"
	"careerfit/internal/service"

	_ "careerfit/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with status and latency.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Gemini.APIKey),
		googleai.WithDefaultModel(cfg.Gemini.Model))
	if err != nil {
		appLogger.Fatal("Failed to create Gemini client", zap.Error(err))
	}
	questionSource := quizgen.NewGeminiQuestionSource(llm)

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionRepository := repository.NewQuestionRepository(db)
	attemptRepository := repository.NewAttemptRepository(db)
	userRepository := repository.NewUserRepository(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	assessmentService := service.NewAssessmentService(
		questionSource, questionRepository, attemptRepository, userRepository,
		cacheAdapter, cfg.Quiz.QuestionsPerQuiz, cfg.Quiz.QuestionCacheTTL)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	userService := service.NewUserService(userRepository, attemptRepository)
	adminService := service.NewAdminService(attemptRepository)

	authorizer, err := service.NewConfigAuthorizer(cfg.Admin)
	if err != nil {
		appLogger.Fatal("Failed to create admin authorizer", zap.Error(err))
	}

	quizHandler := handler.NewQuizHandler(assessmentService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.Refresh)

	apiGroup.Get("/categories", quizHandler.GetCategories)
	apiGroup.Get("/questions", quizHandler.GetQuizSet)
	apiGroup.Post("/submit", quizHandler.SubmitAnswers)

	userGroup := apiGroup.Group("/users", middleware.Protected(authService))
	userGroup.Get("/me", userHandler.GetMe)
	userGroup.Get("/me/attempts", userHandler.GetMyAttempts)

	adminGroup := apiGroup.Group("/admin", middleware.AdminOnly(authorizer))
	adminGroup.Get("/results", adminHandler.ListResults)
	adminGroup.Post("/induct/:attemptID", adminHandler.InductStudent)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
