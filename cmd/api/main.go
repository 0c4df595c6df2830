package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/cache"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/config"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/dashboard"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/dataset"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/domain"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/handler"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/metrics"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/repository"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * 加载数据集，失败时直接退出
	 **********************************************/
	table, err := loadTable(cfg)
	if err != nil {
		logger.Error("无法加载数据集", "source", cfg.Dataset.Source, "error", err)
		os.Exit(1)
	}
	metrics.SetDatasetRows(table.Len())
	logger.Info("数据集加载完成", "source", cfg.Dataset.Source, "rows", table.Len(), "columns", len(table.Columns()))

	dash := dashboard.New(table)

	/**********************************************
	 * 连接 redis（可选）
	 **********************************************/
	var figureCache cache.FigureCache = cache.Noop{}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Error("无法连接到 redis", "error", err)
			os.Exit(1)
		}

		// 以启动时间作为缓存版本，重启后不会读到旧数据集的图表
		version := strconv.FormatInt(time.Now().Unix(), 10)
		figureCache = cache.NewRedis(rdb, time.Duration(cfg.Redis.FigureTTL)*time.Second, version)
	}

	/**********************************************
	 * 创建 handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, dash, figureCache)
	if err != nil {
		logger.Error("无法创建 handler", "error", err)
		os.Exit(1)
	}
	h.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在启动服务器...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("无法启动服务器", slog.String("error", err.Error()))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", slog.String("error", err.Error()))
	}
	logger.Info("服务器已成功关闭")
}

func loadTable(cfg *config.Config) (*domain.Table, error) {
	if cfg.Dataset.Source != config.SourcePostgres {
		return dataset.LoadFile(cfg.Dataset.Path, dataset.Options{ReferenceYear: cfg.Dataset.ReferenceYear})
	}

	dbpool, err := repository.Open(cfg)
	if err != nil {
		return nil, err
	}
	// 数据只在启动时读取一次，读完即可关闭连接池
	defer dbpool.Close()

	return repository.NewRepository(cfg, dbpool).LoadTable(cfg.Dataset.ReferenceYear)
}
