package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inkwell-social/inkwell/internal/api/handler"
	"github.com/inkwell-social/inkwell/internal/api/router"
	"github.com/inkwell-social/inkwell/internal/config"
	"github.com/inkwell-social/inkwell/internal/database"
	"github.com/inkwell-social/inkwell/internal/repository"
	"github.com/inkwell-social/inkwell/internal/service"
	"github.com/inkwell-social/inkwell/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.L().Fatal("open database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.L().Fatal("migrate database", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	users := repository.NewUserRepository(db)
	groups := repository.NewGroupRepository(db)
	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)
	follows := repository.NewFollowRepository(db)

	feedSvc := service.NewFeedService(posts, groups, users, cfg.Feed.PageSize)
	timelineSvc := service.NewTimelineService(feedSvc, rdb, cfg.Feed.CacheTTL)
	postSvc := service.NewPostService(posts, groups)
	commentSvc := service.NewCommentService(comments, posts)
	followSvc := service.NewFollowService(follows, users)
	accountSvc := service.NewAccountService(users, cfg.Auth)
	groupSvc := service.NewGroupService(groups)

	h := handler.New(feedSvc, timelineSvc, postSvc, commentSvc, followSvc, accountSvc, groupSvc)
	engine := router.New(cfg, h)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
