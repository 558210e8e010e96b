package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"prism-ai/backend/internal/api"
	"prism-ai/backend/internal/config"
	"prism-ai/backend/internal/database"
	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/repository"
	"prism-ai/backend/internal/service"
)

// App bundles the long-lived resources so tests can construct and inspect
// the wired application without starting the listener.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

// NewApp wires configuration, storage, the provider adapters and the HTTP
// server together.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	repo := repository.NewSQLiteRepository(db)

	// One shared client; each call is bounded by the dispatcher's per-call
	// context timeout rather than a client-level deadline.
	httpClient := &http.Client{}
	adapters := llm.Registry{
		llm.ProviderOpenAI:     llm.NewOpenAIAdapter(cfg.OpenAIBaseURL, httpClient),
		llm.ProviderAnthropic:  llm.NewAnthropicAdapter(cfg.AnthropicBaseURL, httpClient),
		llm.ProviderGoogle:     llm.NewGoogleAdapter(cfg.GoogleBaseURL, httpClient),
		llm.ProviderOpenRouter: llm.NewOpenRouterAdapter(cfg.OpenRouterBaseURL, cfg.OpenRouterReferer, cfg.OpenRouterAppTitle, httpClient),
	}

	credentialService := service.NewCredentialService(repo)
	dispatchService := service.NewDispatchService(repo, credentialService, adapters, cfg.ProviderTimeout())
	chatService := service.NewChatService(repo, dispatchService)
	profileService := service.NewProfileService(repo)
	modelService := service.NewModelService(repo)

	chatHandler := api.NewChatHandler(chatService)
	profileHandler := api.NewProfileHandler(profileService)
	modelHandler := api.NewModelHandler(modelService)
	router := api.NewRouter(chatHandler, profileHandler, modelHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		// WriteTimeout stays generous: a dispatch may spend a provider
		// timeout on the direct call and another on the fallback.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
