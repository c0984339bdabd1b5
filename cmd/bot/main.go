package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"turibot/internal/config"
	"turibot/internal/handler"
	"turibot/internal/service/ai"
	convoservice "turibot/internal/service/convo"
	"turibot/internal/service/history"
	"turibot/internal/service/session"
	"turibot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if !cfg.Telegram.Enabled() {
		log.Fatal("TELEGRAM_BOT_TOKEN must be set")
	}
	if !cfg.AI.Enabled() {
		log.Fatalf("AI provider %q has no usable credentials", cfg.AI.Provider)
	}

	// Generative-text client
	var client ai.Client
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		client = ai.NewOpenAIClient(cfg.AI)
		log.Println("AI provider: openai")
	default:
		arkClient, err := ai.NewArkClient(ctx, cfg.AI)
		if err != nil {
			log.Fatalf("failed to initialize ark client: %v", err)
		}
		client = arkClient
		log.Println("AI provider: ark")
	}
	aiService := ai.NewService(client)

	// Exchange-history store
	var store history.Store
	if cfg.Database.Enabled() {
		db, err := sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			cancel()
			log.Fatalf("failed to ping database: %v", err)
		}
		cancel()

		if err := history.Migrate(ctx, db); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		store = history.NewPostgresStore(db)
		log.Println("exchange history persisted to Postgres")
	} else {
		store = history.NewMemoryStore()
		log.Println("DATABASE_URL not set, keeping exchange history in memory")
	}

	recorder := history.NewRecorder(store, history.RecorderConfig{
		QueueSize:    cfg.History.QueueSize,
		WriteTimeout: cfg.History.WriteTimeout,
	})
	defer recorder.Close()

	sessions := session.NewStore()
	orchestrator := convoservice.NewService(sessions, aiService, recorder, cfg.AI.RequestTimeout)

	bot := telegram.NewBot(
		telegram.NewClient(cfg.Telegram.Token, ""),
		orchestrator,
		cfg.Telegram.PollTimeout,
	)

	router := handler.NewRouter(sessions, time.Now())
	go startServer(ctx, cfg.Server, router)

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot error: %v", err)
	}
	log.Println("shutting down")
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("ops server listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
