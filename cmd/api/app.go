package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/controller"
	"github.com/agrisense/plant-chatbot/internal/adapter/api/route"
	"github.com/agrisense/plant-chatbot/internal/adapter/repository"
	"github.com/agrisense/plant-chatbot/internal/domain/chat"
	"github.com/agrisense/plant-chatbot/internal/domain/settings"
	"github.com/agrisense/plant-chatbot/internal/infrastructure/database"
	"github.com/agrisense/plant-chatbot/pkg/bot"
	"github.com/agrisense/plant-chatbot/pkg/classifier"
	"github.com/agrisense/plant-chatbot/pkg/logger"
	"github.com/agrisense/plant-chatbot/pkg/session"
)

// App wires the service dependencies
type App struct {
	router       *gin.Engine
	db           *pgxpool.Pool
	logger       logger.Logger
	chatRepo     chat.Repository
	settingsRepo settings.Repository
}

// NewApp builds the application. With a database configured the
// repositories run on Postgres; otherwise the service keeps everything
// in memory, which is enough for local development.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	var db *pgxpool.Pool
	var chatRepo chat.Repository
	var settingsRepo settings.Repository

	if database.Configured() {
		pool, err := database.NewPostgresDB()
		if err != nil {
			return nil, err
		}
		db = pool
		chatRepo = repository.NewPostgresChatRepository(pool)
		settingsRepo = repository.NewPostgresSettingsRepository(pool, log)
		log.Info("Using Postgres storage")
	} else {
		chatRepo = repository.NewMemoryChatRepository()
		settingsRepo = repository.NewMemorySettingsRepository()
		log.Warn("No database configured, using in-memory storage")
	}

	engine, err := bot.NewEngine(log)
	if err != nil {
		return nil, fmt.Errorf("invalid response catalog: %w", err)
	}

	classifierClient := classifier.NewClient(log)

	chatController := controller.NewChatController(engine, chatRepo, settingsRepo, typingDelay(log), log)
	analysisController := controller.NewAnalysisController(classifierClient, chatRepo, settingsRepo, log)
	settingsController := controller.NewSettingsController(settingsRepo, chatRepo, log)

	router := gin.Default()
	router.Use(gin.Recovery())

	// Open CORS policy: the chat UI is a static page served from anywhere
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, session.HeaderName)
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.ConfigureChatRoutes(api, chatController, analysisController)
	route.ConfigureSettingsRoutes(api, settingsController)

	return &App{
		router:       router,
		db:           db,
		logger:       log,
		chatRepo:     chatRepo,
		settingsRepo: settingsRepo,
	}, nil
}

// Start runs the HTTP server
func (a *App) Start() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("Starting server", "port", port)
	return a.router.Run(":" + port)
}

// Close releases the application resources
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// typingDelay reads the artificial reply delay from the environment
func typingDelay(log logger.Logger) time.Duration {
	value := os.Getenv("BOT_TYPING_DELAY")
	if value == "" {
		return 0
	}

	delay, err := time.ParseDuration(value)
	if err != nil || delay < 0 {
		log.Warn("Invalid BOT_TYPING_DELAY, ignoring", "value", value)
		return 0
	}
	return delay
}
