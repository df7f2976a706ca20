package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vchaumont/agenda/internal/api"
	"github.com/vchaumont/agenda/internal/config"
	"github.com/vchaumont/agenda/internal/i18n"
	"github.com/vchaumont/agenda/internal/store"
)

func main() {
	cfg, err := config.Load(getEnv("CONFIG_PATH", "agenda.yaml"))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if listen := os.Getenv("LISTEN"); listen != "" {
		cfg.Listen = listen
	}

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage)
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	session := store.NewSession(time.Now, cfg.Timezone)
	if cfg.SeedDemo {
		session.SeedDemoEvents()
	}

	handler, err := api.NewHandler(session, i18nManager, time.Local, cfg.WeekStartDay(), time.Now)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Agenda",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Agenda listening on http://%s (tz: %s, week start: %s)", cfg.Listen, cfg.Timezone, cfg.WeekStart)
	if err := app.Listen(cfg.Listen); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
