package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"weatherbot-backend/config"
	"weatherbot-backend/controllers"
	"weatherbot-backend/notify"
	"weatherbot-backend/routes"
	"weatherbot-backend/services"
	"weatherbot-backend/store"
	"weatherbot-backend/telegram"
	"weatherbot-backend/utils"
	"weatherbot-backend/weather"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	st := store.NewGormStore(db)
	if err := st.AutoMigrate(); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	weatherClient := weather.NewClient(cfg.OWMAPIKey)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("telegram connect failed", zap.Error(err))
	}
	logger.Info("telegram connected", zap.String("username", bot.Self.UserName))

	dispatcher := notify.NewDispatcher(
		notify.NewTelegramSink(bot),
		notify.NewTwilioSink(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, cfg.TwilioWhatsAppNumber),
	)

	runner := services.NewRunner(st, weatherClient, dispatcher, logger)
	registry := services.NewRegistry(runner, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	users, err := st.ListUsers(ctx)
	if err != nil {
		logger.Fatal("list users failed", zap.Error(err))
	}
	registry.RestoreAll(users)
	registry.Start()
	defer registry.Stop()

	var passwordHash string
	if cfg.AdminPassword != "" {
		passwordHash, err = utils.HashPassword(cfg.AdminPassword)
		if err != nil {
			logger.Fatal("hash admin password failed", zap.Error(err))
		}
	}

	engine := routes.SetupRouter(routes.Deps{
		Log:   logger,
		Auth:  &controllers.AuthController{PasswordHash: passwordHash},
		Admin: &controllers.AdminController{Store: st, Runner: runner},
	})
	go func() {
		if err := engine.Run(cfg.HTTPAddr); err != nil {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	router := telegram.NewRouter(bot, logger, st, weatherClient, registry, runner)

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := bot.GetUpdatesChan(updateCfg)

	logger.Info("bot started", zap.String("http_addr", cfg.HTTPAddr))
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			bot.StopReceivingUpdates()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			router.HandleUpdate(ctx, upd)
		}
	}
}
