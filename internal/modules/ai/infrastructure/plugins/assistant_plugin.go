package plugins

import (
	"context"
	"fmt"
	"strings"

	"HealthPredict/internal/modules/ai/infrastructure/llm"
)

const maxQuestionRunes = 2000

// AssistantPlugin 健康问答，回答不缓存
type AssistantPlugin struct{}

func NewAssistantPlugin() *AssistantPlugin {
	return &AssistantPlugin{}
}

func (p *AssistantPlugin) GetServiceType() string {
	return ServiceTypeAssistant
}

func (p *AssistantPlugin) GenerateOptions() llm.GenerateRequest {
	return llm.GenerateRequest{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 1024}
}

func (p *AssistantPlugin) Validate(ctx context.Context, req *PluginRequest) error {
	q := strings.TrimSpace(req.Input)
	if q == "" {
		return fmt.Errorf("message is required")
	}
	if len([]rune(q)) > maxQuestionRunes {
		return fmt.Errorf("message is too long")
	}
	return nil
}

func (p *AssistantPlugin) BuildPrompt(ctx context.Context, req *PluginRequest) (string, error) {
	return fmt.Sprintf(assistantPrompt, strings.TrimSpace(req.Input)), nil
}

func (p *AssistantPlugin) ParseResponse(ctx context.Context, llmOutput string, req *PluginRequest) (*PluginResponse, error) {
	out := strings.TrimSpace(llmOutput)
	if out == "" {
		return &PluginResponse{Output: assistantFallback, Fallback: true}, nil
	}
	return &PluginResponse{Output: out}, nil
}

func (p *AssistantPlugin) GetCacheKey(ctx context.Context, req *PluginRequest) string {
	return ""
}

func (p *AssistantPlugin) GetCacheTTL() int {
	return 0
}
