package main

import (
	"math/rand"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ozrabal/mentor-api-sub000/internal/config"
	"github.com/ozrabal/mentor-api-sub000/internal/database"
	"github.com/ozrabal/mentor-api-sub000/internal/handlers"
	"github.com/ozrabal/mentor-api-sub000/internal/logger"
	"github.com/ozrabal/mentor-api-sub000/internal/middleware"
	"github.com/ozrabal/mentor-api-sub000/internal/services"
	"github.com/ozrabal/mentor-api-sub000/internal/ws"

	_ "github.com/ozrabal/mentor-api-sub000/docs"
)

// @title           Mentor API
// @version         1.0
// @description     Adaptive mock-interview backend: scores free-text answers, picks the next question and reports on the session
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := database.Connect(cfg, log)
	database.AutoMigrate(db, log)

	hub := ws.NewHub(log)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authService := services.NewAuthService(db, cfg.JWTSecret)
	bank := services.NewQuestionBank(db, log)
	extractService := services.NewExtractService(cfg.LLMAPIKey, cfg.LLMAPIURL, cfg.LLMModel, log)
	profileService := services.NewJobProfileService(db, extractService)
	sessionRepo := services.NewSessionRepository(db)
	interviewService := services.NewInterviewService(
		sessionRepo,
		sessionRepo,
		profileService,
		services.NewScoringEngine(),
		services.NewFeedbackGenerator(),
		services.NewQuestionSelector(bank, rng),
		services.NewReportAggregator(),
		time.Now,
		log,
	)

	if cfg.QuestionBankPath != "" {
		if err := bank.SeedFromFile(cfg.QuestionBankPath); err != nil {
			log.Fatal("failed to seed question bank", zap.Error(err))
		}
	}

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewJobProfileHandler(profileService)
	questionHandler := handlers.NewQuestionHandler(bank)
	interviewHandler := handlers.NewInterviewHandler(interviewService, hub)
	wsHandler := handlers.NewWSHandler(hub, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/interviews/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		profiles := api.Group("/job-profiles")
		profiles.Use(middleware.JWTAuth(authService))
		{
			profiles.GET("", profileHandler.List)
			profiles.POST("", profileHandler.Create)
			profiles.POST("/ingest", profileHandler.Ingest)
			profiles.GET("/:id", profileHandler.Get)
		}

		questions := api.Group("/questions")
		questions.Use(middleware.JWTAuth(authService))
		{
			questions.GET("", questionHandler.List)
			questions.POST("", questionHandler.Create)
		}

		interviews := api.Group("/interviews")
		interviews.Use(middleware.JWTAuth(authService))
		{
			interviews.GET("", interviewHandler.List)
			interviews.POST("", interviewHandler.Start)
			interviews.GET("/:id", interviewHandler.Get)
			interviews.POST("/:id/answers", interviewHandler.SubmitAnswer)
			interviews.POST("/:id/complete", interviewHandler.Complete)
			interviews.POST("/:id/cancel", interviewHandler.Cancel)
			interviews.GET("/:id/report", interviewHandler.GetReport)
		}
	}

	log.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
