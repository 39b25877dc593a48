package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/config"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/database"
	_ "github.com/Core-Foreign-Employee-Hiring/backend-ai/docs" // Swagger docs
	adminctrl "github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/controller/admin"
	userctrl "github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/controller/user"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/logger"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/middleware"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/openrouter"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/ratelimit"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/repository"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Foreign Employee Interview Prep API
// @version 1.0
// @description Interview preparation backend: question catalog, AI-evaluated mock interviews, practice scoring and answer notes.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewInterviewSetRepository,
			repository.NewInterviewAnswerRepository,
			repository.NewInterviewEvaluationRepository,
			repository.NewAnswerNoteRepository,
			repository.NewQAHistoryRepository,
		),

		fx.Provide(
			func(cfg *config.Config) openrouter.ChatClient {
				return openrouter.NewClient(cfg)
			},
			service.NewAIGatewayService,
			func(
				setRepo repository.InterviewSetRepository,
				questionRepo repository.QuestionRepository,
				answerRepo repository.InterviewAnswerRepository,
				evalRepo repository.InterviewEvaluationRepository,
				gateway service.AIGatewayService,
			) service.InterviewSetService {
				return service.NewInterviewSetService(setRepo, questionRepo, answerRepo, evalRepo, gateway, service.DefaultShuffler)
			},
			service.NewInterviewAnswerService,
			service.NewPracticeService,
			service.NewAnswerNoteService,
			service.NewQuestionService,
			middleware.NewAllowlistAuthorizer,
			NewAILimiter,
		),

		fx.Provide(
			adminctrl.NewQuestionController,
			userctrl.NewInterviewController,
			userctrl.NewPracticeController,
			userctrl.NewAnswerNoteController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewAILimiter builds the per-user quota on AI-calling routes. An empty
// REDIS_ADDR disables limiting.
func NewAILimiter(cfg *config.Config) middleware.Limiter {
	if cfg.RateLimit.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR not set, AI rate limiting disabled")
		return nil
	}
	limiter, err := ratelimit.NewRedisFixedWindowLimiter(
		cfg.RateLimit.RedisAddr,
		cfg.RateLimit.RedisPassword,
		"interview:ratelimit:ai",
		cfg.RateLimit.Limit,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to build AI rate limiter, continuing without one")
		return nil
	}
	return limiter
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authorizer middleware.Authorizer,
	aiLimiter middleware.Limiter,
	questionCtrl *adminctrl.QuestionController,
	interviewCtrl *userctrl.InterviewController,
	practiceCtrl *userctrl.PracticeController,
	noteCtrl *userctrl.AnswerNoteController,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.Auth(cfg.Auth.JWTSecret)
	aiQuota := middleware.RateLimit(aiLimiter)

	adminAPIGroup := router.Group("/api/v1/admin", auth, middleware.RequireAdmin(authorizer))
	{
		questionsGroup := adminAPIGroup.Group("/questions")
		questionsGroup.POST("", questionCtrl.CreateQuestion)
		questionsGroup.GET("", questionCtrl.ListQuestions)
		questionsGroup.GET("/:question_id", questionCtrl.GetQuestion)
		questionsGroup.PUT("/:question_id", questionCtrl.UpdateQuestion)
		questionsGroup.DELETE("/:question_id", questionCtrl.DeleteQuestion)
	}

	userAPIGroup := router.Group("/api/v1", auth)
	{
		interviewGroup := userAPIGroup.Group("/interview")
		interviewGroup.POST("/sets", interviewCtrl.CreateSet)
		interviewGroup.GET("/sets", interviewCtrl.ListSets)
		interviewGroup.GET("/sets/:set_id", interviewCtrl.GetSet)
		interviewGroup.POST("/sets/:set_id/complete", aiQuota, interviewCtrl.CompleteSet)
		interviewGroup.POST("/answers", aiQuota, interviewCtrl.SubmitAnswer)
		interviewGroup.POST("/follow-up-answers", interviewCtrl.SubmitFollowUpAnswer)

		practiceGroup := userAPIGroup.Group("/practice")
		practiceGroup.POST("/evaluate", aiQuota, practiceCtrl.Evaluate)
		practiceGroup.GET("/history/:question_id", practiceCtrl.History)

		notesGroup := userAPIGroup.Group("/answer-notes")
		notesGroup.POST("", noteCtrl.CreateNote)
		notesGroup.GET("", noteCtrl.ListNotes)
		notesGroup.PUT("/:note_id", noteCtrl.UpdateNote)
		notesGroup.DELETE("/:note_id", noteCtrl.DeleteNote)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview prep API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.InterviewSet{},
		&model.InterviewAnswer{},
		&model.InterviewEvaluation{},
		&model.EvaluationFeedbackItem{},
		&model.AnswerNote{},
		&model.QAHistory{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
