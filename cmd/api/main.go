package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agents/internal/analytics"
	"github.com/iamasit07/connect4-agents/internal/config"
	transportHttp "github.com/iamasit07/connect4-agents/internal/transport/http"
	"github.com/iamasit07/connect4-agents/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-agents/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	events := analytics.NewAnalytics(cfg.KafkaBrokers, cfg.AnalyticsTopic)
	defer events.Close()

	apiHandler := transportHttp.NewHandler(cfg, events)
	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, cfg, events)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	apiHandler.RegisterRoutes(router)

	// Spectator stream of a single engine game
	router.GET("/ws/watch", wsHandler.HandleWatch)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	// hijacked websocket conns are not tracked by Shutdown
	connManager.CloseAll("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
