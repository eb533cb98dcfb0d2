package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubFinance/internal/config"
	"clubFinance/internal/http-server/handlers/event/addParticipant"
	"clubFinance/internal/http-server/handlers/event/closeEvent"
	"clubFinance/internal/http-server/handlers/event/createEvent"
	"clubFinance/internal/http-server/handlers/event/editEvent"
	"clubFinance/internal/http-server/handlers/event/getAllEvents"
	"clubFinance/internal/http-server/handlers/event/getEventInfo"
	"clubFinance/internal/http-server/handlers/event/joinEvent"
	"clubFinance/internal/http-server/handlers/event/leaveEvent"
	"clubFinance/internal/http-server/handlers/event/reopenEvent"
	"clubFinance/internal/http-server/handlers/finance/addExpense"
	"clubFinance/internal/http-server/handlers/finance/addIncome"
	"clubFinance/internal/http-server/handlers/finance/getSummary"
	"clubFinance/internal/http-server/handlers/payment/markPaid"
	"clubFinance/internal/http-server/handlers/payment/markUnpaid"
	"clubFinance/internal/http-server/middleware/mwlogger"
	"clubFinance/internal/lib/logger/handlers/slogpretty"
	"clubFinance/internal/lib/logger/sl"
	"clubFinance/internal/storage/postgres"
	"clubFinance/internal/sweeper"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting club finance", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/events", createEvent.New(log, storage))
	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{id}", getEventInfo.New(log, storage))
	router.Patch("/events/{id}", editEvent.New(log, storage))
	router.Post("/events/{id}/join", joinEvent.New(log, storage))
	router.Post("/events/{id}/leave", leaveEvent.New(log, storage))
	router.Post("/events/{id}/close", closeEvent.New(log, storage))
	router.Post("/events/{id}/reopen", reopenEvent.New(log, storage))
	router.Post("/events/{id}/participants", addParticipant.New(log, storage))
	router.Post("/payments/{id}/paid", markPaid.New(log, storage))
	router.Post("/payments/{id}/unpaid", markUnpaid.New(log, storage))
	router.Post("/expenses", addExpense.New(log, storage))
	router.Post("/income", addIncome.New(log, storage))
	router.Get("/finance/summary", getSummary.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sweepDone := make(chan struct{})
	go sweeper.Run(log, storage, cfg.Sweep.Interval, sweepDone)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(sweepDone)

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
