package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mysticline/tarot-ai-bridge/internal/ai"
	"github.com/mysticline/tarot-ai-bridge/internal/config"
	"github.com/mysticline/tarot-ai-bridge/internal/deck"
	"github.com/mysticline/tarot-ai-bridge/internal/lang"
	"github.com/mysticline/tarot-ai-bridge/internal/tarot"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	// --- DB ---
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db open error", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("db ping error", zap.Error(err))
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Tarot module wiring ---
	repo := tarot.NewRepo(db)
	aiClient := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, logger)
	outbound := tarot.NewWhatsAppOutbound(cfg.GraphBaseURL, cfg.PhoneNumberID, cfg.WhatsAppToken)
	svc := tarot.NewService(repo, aiClient, outbound, deck.Default(), lang.NewDetector(), tarot.NewSessionState(), logger)
	handler := tarot.NewHandler(svc, cfg.VerifyToken, logger)

	tarot.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
