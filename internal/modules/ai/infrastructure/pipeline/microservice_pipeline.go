package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"HealthPredict/internal/modules/ai/infrastructure/llm"
	"HealthPredict/internal/modules/ai/infrastructure/plugins"
	"HealthPredict/pkg/metrics"
	"HealthPredict/pkg/zlog"

	"go.uber.org/zap"
)

// ErrValidation 插件校验失败，调用方据此返回 400
var ErrValidation = errors.New("validation failed")

// CacheInterface 缓存接口（Redis 实现见 infrastructure/cache）
type CacheInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// MicroservicePipeline AI 调用统一入口
//
// 按 ServiceType 路由到插件，先查缓存，未命中再调用模型。
// generator 为 nil 表示未配置模型密钥，Execute 返回 llm.ErrNotConfigured。
type MicroservicePipeline struct {
	generator llm.Generator
	cache     CacheInterface
	plugins   map[string]plugins.MicroservicePlugin
}

// NewMicroservicePipeline cache 可为 nil（禁用缓存）
func NewMicroservicePipeline(generator llm.Generator, cache CacheInterface, summaryTTL int) *MicroservicePipeline {
	p := &MicroservicePipeline{
		generator: generator,
		cache:     cache,
		plugins:   make(map[string]plugins.MicroservicePlugin),
	}

	p.RegisterPlugin(plugins.NewSummaryPlugin(&plugins.SummaryConfig{CacheTTL: summaryTTL}))
	p.RegisterPlugin(plugins.NewAssistantPlugin())

	return p
}

func (p *MicroservicePipeline) RegisterPlugin(plugin plugins.MicroservicePlugin) {
	serviceType := plugin.GetServiceType()
	p.plugins[serviceType] = plugin

	zlog.Debug("plugin registered", zap.String("service_type", serviceType))
}

// Configured 是否可以调用模型
func (p *MicroservicePipeline) Configured() bool {
	return p.generator != nil
}

// Execute 校验 -> 缓存 -> Prompt -> 生成 -> 解析 -> 回写缓存
func (p *MicroservicePipeline) Execute(ctx context.Context, req *plugins.PluginRequest) (*plugins.PluginResponse, error) {
	startTime := time.Now()

	plugin, ok := p.plugins[req.ServiceType]
	if !ok {
		return nil, fmt.Errorf("unknown service type: %s", req.ServiceType)
	}

	if err := plugin.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if p.generator == nil {
		metrics.ObserveAI(req.ServiceType, "not_configured", time.Since(startTime))
		return nil, llm.ErrNotConfigured
	}

	cacheKey := plugin.GetCacheKey(ctx, req)
	if cacheKey != "" && p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			zlog.Info("cache hit",
				zap.String("service_type", req.ServiceType),
				zap.String("cache_key", cacheKey))
			metrics.ObserveAI(req.ServiceType, "cache_hit", time.Since(startTime))
			return &plugins.PluginResponse{Output: cached, CacheHit: true}, nil
		} else if err != nil {
			zlog.Warn("cache get failed", zap.Error(err), zap.String("cache_key", cacheKey))
		}
	}

	prompt, err := plugin.BuildPrompt(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("build prompt failed: %w", err)
	}

	genReq := plugin.GenerateOptions()
	genReq.Prompt = prompt

	llmStart := time.Now()
	output, err := p.generator.Generate(ctx, genReq)
	llmLatency := time.Since(llmStart)
	if err != nil {
		zlog.Error("llm generate failed",
			zap.Error(err),
			zap.String("service_type", req.ServiceType))
		metrics.ObserveAI(req.ServiceType, "error", llmLatency)
		return nil, fmt.Errorf("llm generate failed: %w", err)
	}

	resp, err := plugin.ParseResponse(ctx, output, req)
	if err != nil {
		return nil, fmt.Errorf("parse response failed: %w", err)
	}

	// 兜底文案不缓存
	if cacheKey != "" && p.cache != nil && !resp.Fallback {
		ttl := time.Duration(plugin.GetCacheTTL()) * time.Second
		if err := p.cache.Set(ctx, cacheKey, resp.Output, ttl); err != nil {
			zlog.Warn("cache set failed",
				zap.Error(err),
				zap.String("cache_key", cacheKey))
		}
	}

	outcome := "ok"
	if resp.Fallback {
		outcome = "fallback"
	}
	metrics.ObserveAI(req.ServiceType, outcome, llmLatency)

	zlog.Info("microservice execute done",
		zap.String("service_type", req.ServiceType),
		zap.String("user_uuid", req.UserUuid),
		zap.Int64("total_latency_ms", time.Since(startTime).Milliseconds()),
		zap.Int64("llm_latency_ms", llmLatency.Milliseconds()),
		zap.Bool("fallback", resp.Fallback),
		zap.Bool("cache_hit", resp.CacheHit))

	return resp, nil
}
