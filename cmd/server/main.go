package main

import (
	"log"
	"strconv"
	"time"

	"typing-race-backend/internal/config"
	"typing-race-backend/internal/database"
	"typing-race-backend/internal/handlers"
	"typing-race-backend/internal/middleware"
	"typing-race-backend/internal/race"
	"typing-race-backend/internal/services"
	"typing-race-backend/internal/ws"

	_ "typing-race-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Typing Race API
// @version         1.0
// @description     Backend for a multiplayer typing race: sessions with a countdown, player registry, race submissions and placements
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()
	clock := clockwork.NewRealClock()

	raceWindowSec, _ := strconv.Atoi(cfg.RaceWindowSeconds)
	if raceWindowSec <= 0 {
		raceWindowSec = 600
	}
	bulkLimit, _ := strconv.Atoi(cfg.BulkInputLimit)

	authService := services.NewAuthService(cfg.ControlPassword, cfg.JWTSecret)
	sessionService := services.NewSessionService(db, clock, time.Duration(raceWindowSec)*time.Second)
	playerService := services.NewPlayerService(db, sessionService, clock)
	raceManager := race.NewManager(clock, bulkLimit)
	raceService := services.NewRaceService(sessionService, playerService, raceManager)

	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessionService, playerService, hub)
	playerHandler := handlers.NewPlayerHandler(playerService, raceService, hub)
	wsHandler := handlers.NewWSHandler(hub, sessionService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/sessions/:id", wsHandler.HandleWebSocket)

	pollSec, _ := strconv.Atoi(cfg.PollInterval)
	if pollSec <= 0 {
		pollSec = 1
	}
	sweeper := services.NewSweeper(sessionService, playerService, hub, clock, time.Duration(pollSec)*time.Second)
	sweeper.Start()
	defer sweeper.Stop()

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		sessions := api.Group("/sessions")
		{
			sessions.GET("", sessionHandler.ListOpenSessions)
			sessions.GET("/current", sessionHandler.GetCurrentSession)
			sessions.POST("", middleware.JWTAuth(authService), sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.POST("/:id/activate", middleware.JWTAuth(authService), sessionHandler.ActivateSession)
			sessions.POST("/:id/finish", middleware.JWTAuth(authService), sessionHandler.FinishSession)
			sessions.GET("/:id/players", sessionHandler.GetPlayers)
			sessions.GET("/:id/results", sessionHandler.GetResults)
		}

		players := api.Group("/players")
		{
			players.POST("", playerHandler.Register)
			players.GET("/:id", playerHandler.GetEntry)
			players.POST("/:id/start", playerHandler.StartTyping)
			players.POST("/:id/progress", playerHandler.Progress)
			players.POST("/:id/finish", playerHandler.FinishRace)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
