package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/nyayai/LegalAPI/internal/assistant"
	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/data/redisStore"
	"github.com/nyayai/LegalAPI/internal/extract"
	"github.com/nyayai/LegalAPI/internal/handlers"
	"github.com/nyayai/LegalAPI/internal/llm"
	"github.com/nyayai/LegalAPI/internal/llm/gemini"
	"github.com/nyayai/LegalAPI/internal/llm/openai"
	"github.com/nyayai/LegalAPI/internal/middleware"
	"github.com/nyayai/LegalAPI/internal/server"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	cfg := config.Load()
	flag.StringVar(&listenAddr, "listen-addr", cfg.ListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	var provider llm.Provider
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		provider = openai.GetOpenAIClient(cfg.OpenAIModel, cfg.OpenAIAPIKey)
	default:
		provider = gemini.GetGeminiClient(serviceContext, cfg.GeminiModel, cfg.GoogleAPIKey)
	}
	if provider == nil {
		logger.Error("The model provider failed to initialize. Shutting down.", "provider", cfg.LLMProvider)
		return
	}

	caller := llm.NewCaller(provider, llm.CallerConfig{
		MaxAttempts: config.ModelMaxAttempts,
		BaseDelay:   config.ModelRetryBaseDelay,
		CallTimeout: config.ModelCallTimeout,
	})

	extractor := extract.NewExtractor(extract.Config{
		Tesseract: cfg.Tesseract,
		Pdftoppm:  cfg.Pdftoppm,
		Lang:      cfg.TesseractLang,
		DPI:       cfg.OCRDPI,
	}, nil)

	handlers.Init(assistant.NewService(caller), extractor, cfg)

	//the limiter degrades to in-memory when redis is offline
	store := redisStore.GetRedisStore(serviceContext, cfg.RedisAddr)
	if store == nil {
		logger.Error("Redis store is offline, rate limiting stays local")
	}
	middleware.InitRateLimiter(store)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr, cfg.CORSOrigins)

	<-stopExecution
	logger.Info("Server stopped")
}
