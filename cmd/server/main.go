package main

import (
	"log"

	"github.com/pelinsarix/themind/internal/cache"
	"github.com/pelinsarix/themind/internal/config"
	"github.com/pelinsarix/themind/internal/database"
	"github.com/pelinsarix/themind/internal/handlers"
	"github.com/pelinsarix/themind/internal/services"
	"github.com/pelinsarix/themind/internal/ws"

	_ "github.com/pelinsarix/themind/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           The Mind API
// @version         1.0
// @description     Server for a cooperative ascending-order card game.
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()
	stateCache := cache.New(cfg.CacheTTL)

	gameService := services.NewGameService(db, stateCache, hub)
	gameService.StartCleanupScheduler(cfg.GameMaxAge)

	gameHandler := handlers.NewGameHandler(gameService)
	wsHandler := handlers.NewWSHandler(gameService, hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/:game_id", wsHandler.HandleWebSocket)

	r.POST("/create_game", gameHandler.CreateGame)
	r.POST("/join_game", gameHandler.JoinGame)
	r.POST("/start_game", gameHandler.StartGame)
	r.POST("/play_card", gameHandler.PlayCard)
	r.POST("/next_round", gameHandler.NextRound)
	r.GET("/game_status/:game_id", gameHandler.GameStatus)

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
