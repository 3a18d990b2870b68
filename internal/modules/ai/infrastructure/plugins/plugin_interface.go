package plugins

import (
	"context"

	"HealthPredict/internal/modules/ai/infrastructure/llm"
)

const (
	ServiceTypeSummary   = "summary"
	ServiceTypeAssistant = "assistant"
)

// MicroservicePlugin AI 微服务插件
//
// 每个插件负责一种调用：校验输入、拼 Prompt、给出生成参数和缓存策略。
// Pipeline 只按 ServiceType 路由，不关心具体业务。
type MicroservicePlugin interface {
	// GetServiceType summary / assistant
	GetServiceType() string

	// BuildPrompt 构建发给模型的完整 Prompt
	BuildPrompt(ctx context.Context, req *PluginRequest) (string, error)

	// GenerateOptions 温度、topK 等生成参数（Prompt 由 Pipeline 填入）
	GenerateOptions() llm.GenerateRequest

	// ParseResponse 处理模型输出，空输出时给出兜底文案
	ParseResponse(ctx context.Context, llmOutput string, req *PluginRequest) (*PluginResponse, error)

	// Validate 调用模型前校验参数
	Validate(ctx context.Context, req *PluginRequest) error

	// GetCacheKey 空字符串表示不缓存
	GetCacheKey(ctx context.Context, req *PluginRequest) string

	// GetCacheTTL 缓存时间（秒）
	GetCacheTTL() int
}

// PluginRequest 插件请求
type PluginRequest struct {
	UserUuid    string             `json:"user_uuid"`
	ServiceType string             `json:"service_type"`
	Input       string             `json:"input"`       // 助手问题
	Disease     string             `json:"disease"`     // 摘要：疾病 slug
	Parameters  map[string]float64 `json:"parameters"`  // 摘要：评估参数
	Prediction  int                `json:"prediction"`  // 摘要：0/1
	Probability *float64           `json:"probability"` // 摘要：可空
}

// PluginResponse 插件响应
type PluginResponse struct {
	Output   string `json:"output"`
	CacheHit bool   `json:"cache_hit"`
	Fallback bool   `json:"fallback"` // 模型无输出，使用了兜底文案
}
