package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"enertek-backend-go/internal/config"
	"enertek-backend-go/internal/db"
	"enertek-backend-go/internal/httpapi"
	"enertek-backend-go/internal/migrations"
	"enertek-backend-go/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	cleanupLogs, err := setupLogger()
	if err != nil {
		log.Printf("logger setup failed: %v", err)
	} else {
		defer cleanupLogs()
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := migrations.Apply(database, "migrations"); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := services.NewMetricsHub()
	go hub.Run(ctx)

	server := httpapi.NewServer(database, cfg, hub)
	go metricsLoop(ctx, server)

	addr := ":8080"
	if value := os.Getenv("PORT"); value != "" {
		addr = ":" + value
	}
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	cancel()
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
	log.Printf("shutdown complete")
}

const logDateFormat = "2006-01-02"

func setupLogger() (func(), error) {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "storage/logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	rotator := &logRotator{dir: dir, retention: logRetentionDays()}
	if err := rotator.rotate(time.Now()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go rotator.watch(ctx)

	return func() {
		cancel()
		rotator.close()
	}, nil
}

// logRetentionDays reads LOG_RETENTION_DAYS, keeping at most a week of files.
func logRetentionDays() int {
	days := 7
	if raw := os.Getenv("LOG_RETENTION_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed < days {
			days = parsed
		}
	}
	return days
}

// logRotator mirrors log lines to stdout and one app-<date>.log file per day.
type logRotator struct {
	mu        sync.Mutex
	dir       string
	retention int
	day       string
	file      *os.File
}

func (lr *logRotator) rotate(now time.Time) error {
	day := now.Format(logDateFormat)
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if day == lr.day && lr.file != nil {
		return nil
	}
	next, err := os.OpenFile(
		filepath.Join(lr.dir, fmt.Sprintf("app-%s.log", day)),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, next))
	if lr.file != nil {
		_ = lr.file.Close()
	}
	lr.file = next
	lr.day = day
	lr.prune(now)
	return nil
}

func (lr *logRotator) watch(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			if err := lr.rotate(now); err != nil {
				log.Printf("log rotation: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// prune runs with lr.mu held.
func (lr *logRotator) prune(now time.Time) {
	entries, err := os.ReadDir(lr.dir)
	if err != nil {
		return
	}
	cutoff := now.AddDate(0, 0, -(lr.retention - 1))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !strings.HasPrefix(name, "app-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		day, err := time.Parse(logDateFormat, strings.TrimSuffix(strings.TrimPrefix(name, "app-"), ".log"))
		if err == nil && day.Before(cutoff) {
			_ = os.Remove(filepath.Join(lr.dir, name))
		}
	}
}

func (lr *logRotator) close() {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if lr.file != nil {
		_ = lr.file.Close()
		lr.file = nil
	}
}

func metricsLoop(ctx context.Context, server *httpapi.Server) {
	ticker := time.NewTicker(time.Duration(server.Config.MetricsSampleSeconds) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sample, err := services.CaptureMetrics(server.DB, server.Config.MetricsDiskPath)
			if err != nil {
				log.Printf("metrics capture: %v", err)
				continue
			}
			server.MetricsHub.Broadcast(sample)
		case <-ctx.Done():
			return
		}
	}
}
