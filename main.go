package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/phonkluver/forel-app-sub000/configs"
	"github.com/phonkluver/forel-app-sub000/middlewares"
	"github.com/phonkluver/forel-app-sub000/repository"
	"github.com/phonkluver/forel-app-sub000/routes"
	"github.com/phonkluver/forel-app-sub000/services"
	"github.com/phonkluver/forel-app-sub000/telegram"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()
	if err := configs.SeedCategories(db); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	// Telegram relay
	var notify services.Notifier = services.NopNotifier{}
	if cfg.BotToken != "" {
		var states telegram.StateStore = telegram.NewMemoryStateStore()
		if cfg.RedisAddr != "" {
			client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
			states = telegram.NewRedisStateStore(client, 24*time.Hour)
		}
		reviews := services.NewReviewService(repository.NewReviewRepository(db), services.NopNotifier{})
		bot, err := telegram.New(cfg.BotToken, cfg.AdminChatID, states, reviews)
		if err != nil {
			log.Fatalf("telegram bot failed: %v", err)
		}
		go bot.Run(context.Background())
		notify = bot
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, staff notifications disabled")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, notify)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
