package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"restaurant-ai-service/config"
	_ "restaurant-ai-service/docs" // Swagger docs
	"restaurant-ai-service/internal/aiconfig"
	aiconfigSqlite "restaurant-ai-service/internal/aiconfig/repository/sqlite"
	chatHTTP "restaurant-ai-service/internal/chat/delivery/http"
	chatUC "restaurant-ai-service/internal/chat/usecase"
	convSqlite "restaurant-ai-service/internal/conversation/repository/sqlite"
	"restaurant-ai-service/internal/httpserver"
	"restaurant-ai-service/internal/knowledge"
	menuSqlite "restaurant-ai-service/internal/menu/repository/sqlite"
	"restaurant-ai-service/internal/semcache"
	"restaurant-ai-service/pkg/llmprovider"
	"restaurant-ai-service/pkg/log"
	"restaurant-ai-service/pkg/sqlite"
)

// @title       Restaurant AI Service API
// @description Per-restaurant conversational AI for menus: deterministic answers, cached responses, and LLM generation with streaming.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Restaurant AI Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	menuRepo, err := menuSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to init menu repository: ", err)
		return
	}
	convRepo, err := convSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to init conversation repository: ", err)
		return
	}
	configRepo, err := aiconfigSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to init ai-config repository: ", err)
		return
	}

	// 4. Caches
	knowledgeCache := knowledge.NewCache(logger, cfg.Cache.MaxEntries, cfg.Cache.KnowledgeTTL)
	semanticCache := semcache.New(cfg.Cache.MaxEntries, cfg.Cache.SemanticTTL)
	configService := aiconfig.NewService(logger, configRepo, cfg.Cache.ConfigTTL, cfg.Cache.MaxEntries)

	// 5. AI provider
	provider, err := llmprovider.New(llmprovider.FactoryConfig{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
		Timeout:  cfg.AI.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to init AI provider: ", err)
		return
	}
	logger.Infof(ctx, "AI provider: %s (%s)", provider.Name(), provider.Model())

	generator := llmprovider.NewGenerator(logger, provider)

	// 6. Chat domain
	uc := chatUC.New(
		logger,
		menuRepo,
		convRepo,
		knowledgeCache,
		semanticCache,
		configService,
		generator,
		provider,
		cfg.AI.Timeout,
	)
	chatHandler := chatHTTP.New(logger, uc, configService, provider)

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		ChatHandler:    chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
