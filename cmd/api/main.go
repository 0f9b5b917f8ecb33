package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cterryc/netlify-two/internal/api"
	"github.com/cterryc/netlify-two/internal/config"
	"github.com/cterryc/netlify-two/internal/user"
)

const (
	dbPingTimeout     = 5 * time.Second
	dbMaxOpenConns    = 2
	dbMaxIdleConns    = 2
	dbConnMaxIdleTime = 10 * time.Second
	dbConnMaxLifetime = 30 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := openDB(cfg.Database.ConnectionString())
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := user.NewPostgresRepository(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		// startup continues; requests keep failing until the schema exists
		slog.Warn("schema reconciliation failed", "error", err)
	}

	handler := user.NewHandler(user.NewService(store))
	app := api.New(cfg, handler)

	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "basePath", cfg.BasePath)
		if err := app.Listen(cfg.Addr); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// openDB opens the connection pool and pings it once. A failed ping is
// reported but does not stop startup.
func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxIdleTime(dbConnMaxIdleTime)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		slog.Warn("database unreachable at startup", "error", err)
	} else {
		slog.Info("database connection established")
	}

	return db, nil
}
