package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vosamoilenko/activity-bar-sub003/common/id"
	"github.com/vosamoilenko/activity-bar-sub003/common/logger"
	"github.com/vosamoilenko/activity-bar-sub003/common/otel"
	"github.com/vosamoilenko/activity-bar-sub003/core/config"
	"github.com/vosamoilenko/activity-bar-sub003/core/db"
	"github.com/vosamoilenko/activity-bar-sub003/internal/mapper"
	"github.com/vosamoilenko/activity-bar-sub003/internal/queue"
	"github.com/vosamoilenko/activity-bar-sub003/internal/search"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service/provider"
	"github.com/vosamoilenko/activity-bar-sub003/internal/store"
	"github.com/vosamoilenko/activity-bar-sub003/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "sync worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Pipeline.RedisGroup,
		"consumer_name", cfg.Pipeline.RedisConsumer)

	// Different node ID than the server so snowflake IDs never collide
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Pipeline.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Pipeline.RedisStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Pipeline.RedisStream,
		Group:        cfg.Pipeline.RedisGroup,
		Consumer:     cfg.Pipeline.RedisConsumer,
		DLQStream:    cfg.Pipeline.RedisDLQStream,
		BatchSize:    1, // One sync run at a time; each run is a full window fetch
		Block:        5 * time.Second,
		MaxAttempts:  3,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	var index search.Index
	if cfg.Typesense.Enabled() {
		index = search.NewTypesenseIndex(cfg.Typesense, nil)
		if err := index.EnsureCollection(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to ensure search collection", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "search index ready", "collection", cfg.Typesense.Collection)
	}

	stores := store.NewStores(database.Queries())

	processor := worker.NewSyncProcessor(
		stores.Accounts(),
		stores.Activities(),
		stores.SyncRuns(),
		provider.NewGitLabService(),
		mapper.NewGitLabEventMapper(),
		index,
		nil,
	)

	w := worker.New(consumer, processor, stores.SyncRuns(), worker.Config{
		MaxAttempts: 3,
	})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Pipeline.RedisStream,
		Group:     cfg.Pipeline.RedisGroup,
		Consumer:  cfg.Pipeline.RedisConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  1 * time.Minute,
		BatchSize: 10,
	}, consumer, w.ProcessMessage)

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Reclaimer first (quick), then the worker which may be mid-sync
	reclaimer.Stop()
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
 █████╗  ██████╗████████╗██╗██╗   ██╗██╗████████╗██╗   ██╗    ██╗    ██╗██████╗ ██╗  ██╗██████╗
██╔══██╗██╔════╝╚══██╔══╝██║██║   ██║██║╚══██╔══╝╚██╗ ██╔╝    ██║    ██║██╔══██╗██║ ██╔╝██╔══██╗
███████║██║        ██║   ██║██║   ██║██║   ██║    ╚████╔╝     ██║ █╗ ██║██████╔╝█████╔╝ ██████╔╝
██╔══██║██║        ██║   ██║╚██╗ ██╔╝██║   ██║     ╚██╔╝      ██║███╗██║██╔══██╗██╔═██╗ ██╔══██╗
██║  ██║╚██████╗   ██║   ██║ ╚████╔╝ ██║   ██║      ██║       ╚███╔███╔╝██║  ██║██║  ██╗██║  ██║
╚═╝  ╚═╝ ╚═════╝   ╚═╝   ╚═╝  ╚═══╝  ╚═╝   ╚═╝      ╚═╝        ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝
`
