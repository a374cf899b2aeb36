package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/nautiquiz/backend/internal/api"
	"github.com/nautiquiz/backend/internal/dataset"
	practicesession "github.com/nautiquiz/backend/internal/domain/practice_session"
	"github.com/nautiquiz/backend/internal/infrastructure/config"
	"github.com/nautiquiz/backend/internal/service"
	"github.com/nautiquiz/backend/internal/store"

	_ "github.com/nautiquiz/backend/docs" // swagger docs
)

// @title           NautiQuiz API
// @version         1.0
// @description     Quiz trainer for the Italian nautical license: spaced-repetition training, error review and timed exam simulations.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	ctx := context.Background()
	db, err := store.Open(ctx, store.Options{
		Driver:      cfg.StoreDriver,
		SQLitePath:  cfg.SQLitePath,
		PostgresDSN: cfg.PostgresDSN,
		RedisAddr:   cfg.RedisAddr,
	})
	if err != nil {
		// Quizzes still work; progress is not saved.
		logger.Error("history store unavailable", "driver", cfg.StoreDriver, "error", err)
		db = store.Unavailable{}
	}

	catalog := dataset.NewCatalog(dataset.NewLoader(logger), dataset.Paths{
		Dir:      cfg.DataDir,
		Base:     cfg.BaseDataset,
		Sail:     cfg.SailDataset,
		ImageMap: cfg.ImageMap,
		ImageDir: cfg.ImageDir,
	})

	recorderOpts := service.DefaultRecorderOptions()
	recorderOpts.Workers = cfg.WriteWorkers
	recorderOpts.Buffer = cfg.WriteBuffer
	recorderOpts.Attempts = cfg.WriteRetries
	recorder := service.NewAnswerRecorder(db, logger, recorderOpts)

	training := practicesession.DefaultConfig()
	training.TargetCount = cfg.TrainingSize

	sessions := service.NewSessionService(catalog, recorder, logger, training)
	progress := service.NewProgressService(db, catalog, recorder, logger)

	handler, err := api.NewHandler(sessions, progress, catalog, logger)
	if err != nil {
		logger.Error("failed to build handlers", "error", err)
		os.Exit(1)
	}

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → Recover → CORS → mux ────────────
	logged := api.Logging(logger)(api.Recover(logger)(api.CORS(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"store", cfg.StoreDriver,
		"data_dir", cfg.DataDir,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
	<-stopped

	// Pending history writes go out before the store closes.
	recorder.Close()
	if err := db.Close(); err != nil {
		logger.Error("failed to close history store", "error", err)
	}
	logger.Info("server stopped")
}
