package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/legalmate/internal/ai"
	"github.com/Vovarama1992/legalmate/internal/chat"
	"github.com/Vovarama1992/legalmate/internal/checklist"
	"github.com/Vovarama1992/legalmate/internal/config"
	"github.com/Vovarama1992/legalmate/internal/delivery"
	"github.com/Vovarama1992/legalmate/internal/notificator"
	"github.com/Vovarama1992/legalmate/internal/speech"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}
	if cfg.STTProvider == "deepgram" && cfg.DeepgramKey == "" {
		log.Fatal("DEEPGRAM_API_KEY is not set")
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var alertInfra notificator.Notificator = notificator.Noop{}
	if cfg.TelegramAlertToken != "" {
		tg, err := notificator.NewTelegramInfra(cfg.TelegramAlertToken, "", cfg.TelegramAlertChatIDs)
		if err != nil {
			log.Fatalf("failed to init telegram alerts: %v", err)
		}
		alertInfra = tg
	}
	notifier := notificator.NewService(alertInfra, zl)

	// =========================================================================
	// CLIENTS
	// =========================================================================

	openAIClient := ai.NewOpenAIClient(cfg)

	var stt speech.STTClient = openAIClient
	if cfg.STTProvider == "deepgram" {
		stt = speech.NewDeepgramClient(cfg)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	checklistService := checklist.NewService(openAIClient, checklist.Options{
		Model:       cfg.ChecklistModel,
		Temperature: cfg.ChecklistTemperature,
		MaxTokens:   cfg.ChecklistMaxTokens,
	}, notifier)

	speechService := speech.NewService(stt, cfg.STTProvider, notifier)

	assistant := ai.NewAssistantService(openAIClient, cfg.ChatModel, cfg.ChatMaxTokens, notifier)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := delivery.NewRouter(
		cfg.RateLimitPerMinute,
		delivery.NewChatHandler(assistant, zl),
		delivery.NewChecklistHandler(checklistService, zl),
		delivery.NewTranscribeHandler(speechService, zl),
	)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	// the app talks to CHAT_API_URL, so alert when that address stops answering
	go func() {
		probe := chat.NewClient(cfg.ChatAPIURL, 10*time.Second)
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			if err := probe.CheckHealth(ctx); err != nil {
				log.Printf("[health-probe] error: %v", err)
				_ = notifier.Notify(ctx, "health-probe", err, "Chat API is not reachable at "+cfg.ChatAPIURL)
			}
			cancel()
		}
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr + ", stt=" + cfg.STTProvider,
		Service: "legalmate",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
