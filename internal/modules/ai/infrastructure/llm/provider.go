package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"HealthPredict/internal/config"

	arkModel "github.com/cloudwego/eino-ext/components/model/ark"
	openaiModel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// ErrNotConfigured 未配置模型密钥
var ErrNotConfigured = errors.New("Gemini API key not configured")

// GenerateRequest 一次文本生成
type GenerateRequest struct {
	Prompt          string
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}

// Generator 文本生成器，返回模型输出的纯文本
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

type ChatModelMeta struct {
	Provider string
	Model    string
}

// NewGeneratorFromConfig 按 aiConfig.chatModel.provider 创建生成器
// 密钥缺失时返回 (nil, meta, nil)，由调用方按未配置处理
func NewGeneratorFromConfig(ctx context.Context, conf *config.Config) (Generator, ChatModelMeta, error) {
	if conf == nil {
		return nil, ChatModelMeta{}, fmt.Errorf("nil config")
	}

	cm := conf.AIConfig.ChatModel
	provider := strings.ToLower(strings.TrimSpace(cm.Provider))
	modelName := strings.TrimSpace(cm.Model)

	timeout := 2 * time.Minute
	if cm.TimeoutSeconds > 0 {
		timeout = time.Duration(cm.TimeoutSeconds) * time.Second
	}

	switch provider {
	case "", "gemini":
		apiKey := strings.TrimSpace(cm.APIKey)
		if apiKey == "" {
			apiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		}
		if modelName == "" {
			modelName = DefaultGeminiModel
		}
		meta := ChatModelMeta{Provider: "gemini", Model: modelName}
		if apiKey == "" {
			return nil, meta, nil
		}
		g, err := NewGeminiGenerator(ctx, apiKey, modelName)
		if err != nil {
			return nil, meta, err
		}
		return g, meta, nil

	case "openai":
		apiKey := strings.TrimSpace(cm.APIKey)
		if apiKey == "" {
			apiKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		}
		if modelName == "" {
			modelName = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
		}
		baseURL := strings.TrimSpace(cm.BaseURL)
		if baseURL == "" {
			baseURL = strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
		}
		meta := ChatModelMeta{Provider: "openai", Model: modelName}
		if apiKey == "" {
			return nil, meta, nil
		}
		if modelName == "" {
			return nil, meta, fmt.Errorf("openai chat model missing model")
		}

		chat, err := openaiModel.NewChatModel(ctx, &openaiModel.ChatModelConfig{
			APIKey:     apiKey,
			Model:      modelName,
			BaseURL:    baseURL,
			ByAzure:    cm.ByAzure,
			APIVersion: strings.TrimSpace(cm.AzureAPIVersion),
			Timeout:    timeout,
		})
		if err != nil {
			return nil, meta, err
		}
		return NewChatModelGenerator(chat), meta, nil

	case "ark":
		apiKey := strings.TrimSpace(cm.APIKey)
		accessKey := strings.TrimSpace(cm.AccessKey)
		secretKey := strings.TrimSpace(cm.SecretKey)
		if apiKey == "" {
			apiKey = strings.TrimSpace(os.Getenv("ARK_API_KEY"))
		}
		if accessKey == "" {
			accessKey = strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY"))
		}
		if secretKey == "" {
			secretKey = strings.TrimSpace(os.Getenv("ARK_SECRET_KEY"))
		}
		if modelName == "" {
			modelName = strings.TrimSpace(os.Getenv("ARK_MODEL_ID"))
		}
		baseURL := strings.TrimSpace(cm.BaseURL)
		if baseURL == "" {
			baseURL = strings.TrimSpace(os.Getenv("ARK_BASE_URL"))
		}
		region := strings.TrimSpace(cm.Region)
		if region == "" {
			region = strings.TrimSpace(os.Getenv("ARK_REGION"))
		}

		meta := ChatModelMeta{Provider: "ark", Model: modelName}
		if apiKey == "" && (accessKey == "" || secretKey == "") {
			return nil, meta, nil
		}
		if modelName == "" {
			return nil, meta, fmt.Errorf("ark chat model missing model")
		}

		retryTimes := 2
		if cm.RetryTimes > 0 {
			retryTimes = cm.RetryTimes
		}
		chat, err := arkModel.NewChatModel(ctx, &arkModel.ChatModelConfig{
			APIKey:     apiKey,
			AccessKey:  accessKey,
			SecretKey:  secretKey,
			Model:      modelName,
			BaseURL:    baseURL,
			Region:     region,
			Timeout:    &timeout,
			RetryTimes: &retryTimes,
		})
		if err != nil {
			return nil, meta, err
		}
		return NewChatModelGenerator(chat), meta, nil

	case "disabled", "none":
		return nil, ChatModelMeta{Provider: provider}, nil

	default:
		return nil, ChatModelMeta{}, fmt.Errorf("unknown chat model provider: %s", provider)
	}
}

// chatModelGenerator 把 eino ChatModel 适配成 Generator
type chatModelGenerator struct {
	chat model.BaseChatModel
}

func NewChatModelGenerator(chat model.BaseChatModel) Generator {
	return &chatModelGenerator{chat: chat}
}

func (g *chatModelGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	opts := []model.Option{model.WithTemperature(req.Temperature)}
	if req.TopP > 0 {
		opts = append(opts, model.WithTopP(req.TopP))
	}
	if req.MaxOutputTokens > 0 {
		opts = append(opts, model.WithMaxTokens(int(req.MaxOutputTokens)))
	}

	msg, err := g.chat.Generate(ctx, []*schema.Message{schema.UserMessage(req.Prompt)}, opts...)
	if err != nil {
		return "", err
	}
	if msg == nil {
		return "", nil
	}
	return msg.Content, nil
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator Gemini generateContent
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &geminiGenerator{client: client, model: modelName}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		SafetySettings:  safetySettings(),
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.TopK > 0 {
		cfg.TopK = genai.Ptr(req.TopK)
	}
	if req.TopP > 0 {
		cfg.TopP = genai.Ptr(req.TopP)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}

// safetySettings 四类内容均为中等及以上拦截
func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	out := make([]*genai.SafetySetting, 0, len(categories))
	for _, c := range categories {
		out = append(out, &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return out
}
