// Command server runs the quote simulator HTTP API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quote-simulator/internal/common/aws"
	"quote-simulator/internal/common/config"
	"quote-simulator/internal/common/database"
	"quote-simulator/internal/common/logger"
	"quote-simulator/internal/common/notion"
	"quote-simulator/internal/leads"
	"quote-simulator/internal/pricing"
	"quote-simulator/internal/server"
	"quote-simulator/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zapLogger.Sync() }()
	log := logger.NewZapAdapter(zapLogger)

	log.Info("starting quote simulator", map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	redisClient, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		log.WithError(err).Error("failed to build redis client", nil)
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx); err != nil {
		cancel()
		log.WithError(err).Error("redis is unreachable", map[string]interface{}{
			"address": cfg.Database.Redis.Address,
		})
		os.Exit(1)
	}
	cancel()

	pricingCfg, err := pricing.LoadConfig(cfg.Pricing.ConfigFile)
	if err != nil {
		log.WithError(err).Error("invalid pricing configuration", map[string]interface{}{
			"configFile": cfg.Pricing.ConfigFile,
		})
		os.Exit(1)
	}
	engine := pricing.NewEngine(pricingCfg)

	notionClient := notion.NewClient(cfg.Integrations.Notion.Token, cfg.Integrations.Notion.DatabaseID)
	log.Info("lead store configuration", map[string]interface{}{
		"hasNotionToken":    notionClient.HasToken(),
		"hasNotionDatabase": notionClient.HasDatabase(),
	})

	notifier := buildNotifier(cfg, log)
	leadService := leads.NewService(engine, notionClient, notifier, log)
	sessionStore := wizard.NewStore(redisClient, cfg.SessionTTL())

	router := server.NewRouter(server.Dependencies{
		Engine:   engine,
		Leads:    leadService,
		Sessions: sessionStore,
		Log:      log,
	}, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, router, log)
	if err := srv.Run(ctx); err != nil {
		log.WithError(err).Error("http server failed", nil)
		os.Exit(1)
	}

	log.Info("shutdown complete", nil)
}

// buildNotifier wires the enabled notification channels. A channel whose
// client cannot be built is disabled with a warning instead of blocking
// startup, lead storage still works without it.
func buildNotifier(cfg *config.Config, log logger.Logger) *leads.Notifier {
	awsCfg := cfg.Integrations.AWS
	if !awsCfg.SES.Enabled && !awsCfg.SNS.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var email aws.EmailSender
	if awsCfg.SES.Enabled {
		client, err := aws.NewSESClient(ctx, awsCfg.Region)
		if err != nil {
			log.WithError(err).Warn("ses client unavailable, email notifications disabled", nil)
		} else {
			email = client
		}
	}

	var topic aws.TopicPublisher
	if awsCfg.SNS.Enabled {
		client, err := aws.NewSNSClient(ctx, awsCfg.Region)
		if err != nil {
			log.WithError(err).Warn("sns client unavailable, topic notifications disabled", nil)
		} else {
			topic = client
		}
	}

	if email == nil && topic == nil {
		return nil
	}
	return leads.NewNotifier(email, topic, cfg.Integrations, log)
}
