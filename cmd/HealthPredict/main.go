package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	https_server "HealthPredict/api/http"
	"HealthPredict/internal/config"
	"HealthPredict/internal/initial"
	aiService "HealthPredict/internal/modules/ai/application/service"
	"HealthPredict/internal/modules/ai/infrastructure/cache"
	"HealthPredict/internal/modules/ai/infrastructure/llm"
	"HealthPredict/internal/modules/ai/infrastructure/pipeline"
	assessmentService "HealthPredict/internal/modules/assessment/application/service"
	assessmentPersistence "HealthPredict/internal/modules/assessment/infrastructure/persistence"
	"HealthPredict/internal/modules/assessment/infrastructure/predictor"
	userService "HealthPredict/internal/modules/user/application/service"
	userPersistence "HealthPredict/internal/modules/user/infrastructure/persistence"
	"HealthPredict/pkg/redis"
	"HealthPredict/pkg/zlog"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()
	zlog.Init(conf.LogConfig.LogPath, conf.LogConfig.Level)
	defer func() { _ = zlog.Sync() }()

	if conf.JwtConfig.Key == "" {
		zlog.Fatal("jwtConfig.key 未配置")
	}

	// 2. 基础设施
	db, err := initial.InitGorm(conf)
	if err != nil {
		zlog.Fatal("数据库初始化失败", zap.Error(err))
	}
	initial.InitRedis(conf)

	userRepo := userPersistence.NewUserInfoRepository(db)
	assessmentRepo := assessmentPersistence.NewAssessmentRepository(db)
	predictorClient := predictor.NewHTTPClient(conf.PredictorConfig.BaseURL, time.Duration(conf.PredictorConfig.TimeoutSeconds)*time.Second)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	recording := initial.InitRecording(conf, assessmentRepo)
	if recording.Worker != nil {
		go func() {
			if err := recording.Worker.Run(rootCtx); err != nil && !errors.Is(err, context.Canceled) {
				zlog.Error("assessment consumer stopped", zap.Error(err))
			}
		}()
	}

	generator, meta, err := llm.NewGeneratorFromConfig(rootCtx, conf)
	if err != nil {
		zlog.Fatal("AI 模型初始化失败", zap.Error(err))
	}
	if generator == nil {
		zlog.Warn("AI 模型未配置，摘要与问答接口将返回错误", zap.String("provider", meta.Provider))
	} else {
		zlog.Info("AI 模型已启用", zap.String("provider", meta.Provider), zap.String("model", meta.Model))
	}
	aiPipeline := pipeline.NewMicroservicePipeline(generator, cache.NewRedisCache(), conf.AIConfig.SummaryCacheTTL)

	checks := map[string]https_server.HealthCheck{
		"mysql": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"predictor": predictorClient.Ping,
	}
	if redis.IsConnected() {
		checks["redis"] = redis.Ping
	}

	// 3. 应用服务与路由
	engine, err := https_server.NewEngine(https_server.Deps{
		Config:      conf,
		Users:       userService.NewUserInfoService(userRepo),
		Assessments: assessmentService.NewAssessmentService(predictorClient, recording.Recorder, assessmentRepo),
		AI:          aiService.NewAIMicroserviceService(aiPipeline),
		Checks:      checks,
	})
	if err != nil {
		zlog.Fatal("路由初始化失败", zap.Error(err))
	}

	addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("服务器正在启动", zap.String("addr", addr), zap.Bool("tls", conf.MainConfig.EnableTLS))
		var err error
		if conf.MainConfig.EnableTLS {
			err = srv.ListenAndServeTLS(conf.MainConfig.CertFile, conf.MainConfig.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 4. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("正在关闭服务器...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("服务器关闭超时", zap.Error(err))
	}

	stop()
	recording.Close()
	if err := redis.Close(); err != nil {
		zlog.Warn("close redis failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	zlog.Info("服务器已关闭")
}
