// Command inspect_bank parses a vocabulary dump and prints the resulting
// question bank as JSON, so a dump can be checked before the API serves it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt" // For initial error printing before logger is up
	"os"

	"vocab-drills/internal/adapter"
	"vocab-drills/internal/adapter/source"
	"vocab-drills/internal/cache"
	"vocab-drills/internal/config"
	"vocab-drills/internal/domain"
	"vocab-drills/internal/logger"
	"vocab-drills/internal/service"

	"go.uber.org/zap"
)

func main() {
	path := flag.String("file", "", "dump file to parse (defaults to source.path from config)")
	url := flag.String("url", "", "dump URL to fetch when no file is given")
	limit := flag.Int("limit", 0, "maximum questions to keep (defaults to drill.max_questions)")
	refresh := flag.Bool("refresh", false, "drop the cached bank before loading")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	var questionSource domain.QuestionSource
	switch {
	case *path != "":
		questionSource = source.NewFileSource(*path)
	case *url != "":
		questionSource = source.NewHTTPSource(*url, cfg.Source.Timeout)
	case cfg.Source.Path != "":
		questionSource = source.NewFileSource(cfg.Source.Path)
	default:
		questionSource = source.NewHTTPSource(cfg.Source.URL, cfg.Source.Timeout)
	}

	if *limit <= 0 {
		*limit = cfg.Drill.MaxQuestions
	}

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Get().Warn("Redis unavailable, inspecting without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		}
	}

	bank := service.NewQuestionBankService(questionSource, cacheAdapter, cfg.Redis.BankTTL, *limit)
	if *refresh {
		if err := bank.Invalidate(ctx); err != nil {
			logger.Get().Warn("Failed to invalidate cached bank", zap.Error(err))
		}
	}

	questions := bank.Questions(ctx)
	logger.Get().Info("Question bank loaded",
		zap.String("source", bank.SourceName()),
		zap.Int("count", len(questions)),
		zap.Int("limit", *limit),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(questions); err != nil {
		logger.Get().Fatal("Failed to write questions", zap.Error(err))
	}
	if len(questions) == 0 {
		os.Exit(2)
	}
}
