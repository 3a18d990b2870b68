package plugins

import (
	"context"
	"strings"
	"testing"

	"HealthPredict/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryPromptForDiabetesIncludesProfile(t *testing.T) {
	p := NewSummaryPlugin(nil)
	prob := 0.8734
	req := &PluginRequest{
		Disease: "diabetes",
		Parameters: map[string]float64{
			"gender": 1, "age": 52, "hypertension": 1, "heart_disease": 0,
			"smoking_history": 2, "bmi": 31.2, "HbA1c_level": 7.1, "blood_glucose_level": 160,
		},
		Prediction:  1,
		Probability: &prob,
	}
	require.NoError(t, p.Validate(context.Background(), req))

	prompt, err := p.BuildPrompt(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, prompt, "predicts that this individual has a high risk of diabetes, with a confidence score of 87.34%.")
	assert.Contains(t, prompt, "the patient is female, has hypertension, does not have heart disease, and is a former smoker.")
	assert.Contains(t, prompt, "Generate a structured medical summary (200 words)")
	assert.Contains(t, prompt, "- BMI: 31.2 kg/m²")
	assert.NotContains(t, prompt, "%!")
}

func TestSummaryPromptDefaultsProbability(t *testing.T) {
	p := NewSummaryPlugin(nil)
	prompt, err := p.BuildPrompt(context.Background(), &PluginRequest{Disease: "heart", Prediction: 0})
	require.NoError(t, err)
	assert.Contains(t, prompt, "this person does not have a high risk of heart disease, with a confidence of 50.00%.")
	assert.Contains(t, prompt, "emphasize that this is not a medical diagnosis")
	assert.NotContains(t, prompt, "Assessment parameters:")
}

func TestSummaryPromptUnknownDiseaseListsRawParameters(t *testing.T) {
	p := NewSummaryPlugin(nil)
	prompt, err := p.BuildPrompt(context.Background(), &PluginRequest{
		Disease:    "gout",
		Parameters: map[string]float64{"b": 2, "a": 1.5},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "high risk of gout")
	assert.True(t, strings.Index(prompt, "- a: 1.5") < strings.Index(prompt, "- b: 2"))
}

func TestSummaryValidate(t *testing.T) {
	p := NewSummaryPlugin(nil)
	ctx := context.Background()
	bad := 1.5

	assert.Error(t, p.Validate(ctx, &PluginRequest{}))
	assert.Error(t, p.Validate(ctx, &PluginRequest{Disease: "heart", Prediction: 2}))
	assert.Error(t, p.Validate(ctx, &PluginRequest{Disease: "heart", Probability: &bad}))
}

func TestSummaryCacheKeyStable(t *testing.T) {
	p := NewSummaryPlugin(&SummaryConfig{CacheTTL: 60})
	ctx := context.Background()
	a := &PluginRequest{Disease: "heart", Parameters: map[string]float64{"age": 40, "slope": 1}}
	b := &PluginRequest{Disease: "heart", Parameters: map[string]float64{"slope": 1, "age": 40}}
	c := &PluginRequest{Disease: "heart", Parameters: map[string]float64{"age": 41, "slope": 1}}

	assert.Equal(t, p.GetCacheKey(ctx, a), p.GetCacheKey(ctx, b))
	assert.NotEqual(t, p.GetCacheKey(ctx, a), p.GetCacheKey(ctx, c))
	assert.True(t, strings.HasPrefix(p.GetCacheKey(ctx, a), "ai:micro:summary:"))
	assert.Equal(t, 60, p.GetCacheTTL())
}

func TestFallbackOnEmptyOutput(t *testing.T) {
	ctx := context.Background()

	resp, err := NewSummaryPlugin(nil).ParseResponse(ctx, "  \n", nil)
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "I'm sorry, I couldn't generate a summary at this time.", resp.Output)

	resp, err = NewAssistantPlugin().ParseResponse(ctx, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, I couldn't generate a response at this time.", resp.Output)
}

func TestAssistantPrompt(t *testing.T) {
	p := NewAssistantPlugin()
	ctx := context.Background()

	assert.Error(t, p.Validate(ctx, &PluginRequest{Input: "   "}))
	assert.Error(t, p.Validate(ctx, &PluginRequest{Input: strings.Repeat("x", maxQuestionRunes+1)}))

	prompt, err := p.BuildPrompt(ctx, &PluginRequest{Input: " Is coffee bad for blood pressure? "})
	require.NoError(t, err)
	assert.Equal(t, `You are a helpful, knowledgeable health assistant. Provide accurate, evidence-based health information in response to this question: "Is coffee bad for blood pressure?". Remember to clarify that you're providing general information and not medical advice. Keep responses concise (under 150 words).`, prompt)
	assert.Empty(t, p.GetCacheKey(ctx, &PluginRequest{Input: "x"}))

	opts := p.GenerateOptions()
	assert.Equal(t, float32(40), opts.TopK)
	assert.Equal(t, int32(1024), opts.MaxOutputTokens)
}

func TestSummaryPromptTreatsNonZeroGenderAsFemale(t *testing.T) {
	p := NewSummaryPlugin(nil)
	prompt, err := p.BuildPrompt(context.Background(), &PluginRequest{
		Disease:    "diabetes",
		Parameters: map[string]float64{"gender": 2},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "the patient is female,")

	prompt, err = p.BuildPrompt(context.Background(), &PluginRequest{Disease: "diabetes"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "the patient is male,")
}

func TestSummaryPluginDefaultCacheTTL(t *testing.T) {
	assert.Equal(t, constants.SummaryCacheTTLSeconds, NewSummaryPlugin(nil).GetCacheTTL())
}
