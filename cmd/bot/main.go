// Package main is the entry point for the PancyMod Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/PancyModGo/internal/commands"
	"github.com/PancyStudios/PancyModGo/internal/events"
	"github.com/PancyStudios/PancyModGo/pkg/casestore"
	"github.com/PancyStudios/PancyModGo/pkg/config"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/PancyStudios/PancyModGo/pkg/mqtt"
	"github.com/PancyStudios/PancyModGo/pkg/storage"
	"github.com/PancyStudios/PancyModGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando PancyMod Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize moderation storage
	fileStore, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error preparing data directory %s: %v", cfg.DataDir, err), "Main")
		os.Exit(1)
	}
	caseStore := casestore.NewStore(fileStore)

	// Initialize MQTT telemetry (optional)
	var telemetry moderation.Telemetry
	if cfg.TelemetryEnabled() {
		mqttClientID := "pancymod"
		if !cfg.IsProd() {
			mqttClientID = "pancymod_canary"
		}

		mqttClient := mqtt.Init(
			cfg.MQTTHost,
			cfg.MQTTPort,
			cfg.MQTTUser,
			cfg.MQTTPassword,
			mqttClientID,
			cfg.Environment,
		)
		defer mqttClient.Destroy()
		telemetry = mqttClient
	}

	// Initialize web server
	webServer := web.Init()
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Wire the moderation service over the Discord session
	executor := discord.NewSessionExecutor(discordClient.Session)
	notifier := discord.NewDMNotifier(discordClient.Session)
	svc := moderation.NewService(caseStore, executor, notifier, telemetry)

	// Register commands and events
	commands.RegisterAll(discordClient, svc)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	logger.Success("PancyMod Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando PancyMod Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
