package llm

import (
	"context"
	"testing"

	"HealthPredict/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "ARK_MODEL_ID", "ARK_BASE_URL", "ARK_REGION",
	} {
		t.Setenv(k, "")
	}
}

func confWith(cm config.AIChatModelConfig) *config.Config {
	c := &config.Config{}
	c.AIConfig.ChatModel = cm
	return c
}

func TestNewGeneratorFromConfigWithoutKeys(t *testing.T) {
	clearProviderEnv(t)

	cases := []struct {
		name     string
		cm       config.AIChatModelConfig
		provider string
		model    string
	}{
		{name: "default", cm: config.AIChatModelConfig{}, provider: "gemini", model: DefaultGeminiModel},
		{name: "gemini", cm: config.AIChatModelConfig{Provider: "Gemini"}, provider: "gemini", model: DefaultGeminiModel},
		{name: "gemini custom model", cm: config.AIChatModelConfig{Provider: "gemini", Model: "gemini-2.0-flash"}, provider: "gemini", model: "gemini-2.0-flash"},
		{name: "openai", cm: config.AIChatModelConfig{Provider: "openai", Model: "gpt-4o-mini"}, provider: "openai", model: "gpt-4o-mini"},
		{name: "ark", cm: config.AIChatModelConfig{Provider: "ark", Model: "ep-1"}, provider: "ark", model: "ep-1"},
		{name: "ark access key only", cm: config.AIChatModelConfig{Provider: "ark", AccessKey: "ak", Model: "ep-1"}, provider: "ark", model: "ep-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, meta, err := NewGeneratorFromConfig(context.Background(), confWith(tc.cm))
			require.NoError(t, err)
			assert.Nil(t, g)
			assert.Equal(t, tc.provider, meta.Provider)
			assert.Equal(t, tc.model, meta.Model)
		})
	}
}

func TestNewGeneratorFromConfigDisabled(t *testing.T) {
	clearProviderEnv(t)

	for _, provider := range []string{"disabled", "none"} {
		g, meta, err := NewGeneratorFromConfig(context.Background(), confWith(config.AIChatModelConfig{Provider: provider, APIKey: "k"}))
		require.NoError(t, err)
		assert.Nil(t, g)
		assert.Equal(t, provider, meta.Provider)
	}
}

func TestNewGeneratorFromConfigErrors(t *testing.T) {
	clearProviderEnv(t)

	_, _, err := NewGeneratorFromConfig(context.Background(), nil)
	assert.Error(t, err)

	_, _, err = NewGeneratorFromConfig(context.Background(), confWith(config.AIChatModelConfig{Provider: "claude"}))
	assert.EqualError(t, err, "unknown chat model provider: claude")

	_, _, err = NewGeneratorFromConfig(context.Background(), confWith(config.AIChatModelConfig{Provider: "openai", APIKey: "k"}))
	assert.EqualError(t, err, "openai chat model missing model")

	_, _, err = NewGeneratorFromConfig(context.Background(), confWith(config.AIChatModelConfig{Provider: "ark", APIKey: "k"}))
	assert.EqualError(t, err, "ark chat model missing model")
}

func TestGeminiKeyFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	g, meta, err := NewGeneratorFromConfig(context.Background(), confWith(config.AIChatModelConfig{Provider: "gemini"}))
	require.NoError(t, err)
	assert.NotNil(t, g)
	assert.Equal(t, DefaultGeminiModel, meta.Model)
}

func TestSafetySettings(t *testing.T) {
	settings := safetySettings()
	require.Len(t, settings, 4)

	got := make([]genai.HarmCategory, 0, len(settings))
	for _, s := range settings {
		assert.Equal(t, genai.HarmBlockThresholdBlockMediumAndAbove, s.Threshold)
		got = append(got, s.Category)
	}
	assert.ElementsMatch(t, []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}, got)
}
