package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-seat-tracker/internal/config"
	"github.com/iliyamo/railway-seat-tracker/internal/database"
	"github.com/iliyamo/railway-seat-tracker/internal/handler"
	"github.com/iliyamo/railway-seat-tracker/internal/lifecycle"
	"github.com/iliyamo/railway-seat-tracker/internal/queue"
	"github.com/iliyamo/railway-seat-tracker/internal/repository"
	"github.com/iliyamo/railway-seat-tracker/internal/router"
	queue_publisher "github.com/iliyamo/railway-seat-tracker/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	engine := lifecycle.NewEngine(repository.NewSeatRepo(db))
	h := handler.NewSeatHandler(engine, queue_publisher.AMQPEvents{})

	// Background consumer mirrors reallocation events into the audit log.
	go func() {
		if err := queue.StartReallocationConsumer(); err != nil {
			log.Printf("realloc consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterSeatRoutes(e, h, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
