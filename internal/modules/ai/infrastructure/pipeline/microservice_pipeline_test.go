package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"HealthPredict/internal/modules/ai/infrastructure/llm"
	"HealthPredict/internal/modules/ai/infrastructure/plugins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	output string
	err    error
	calls  []llm.GenerateRequest
}

func (g *fakeGenerator) Generate(_ context.Context, req llm.GenerateRequest) (string, error) {
	g.calls = append(g.calls, req)
	return g.output, g.err
}

type memCache struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value.(string)
	m.ttl[key] = ttl
	return nil
}


func summaryRequest() *plugins.PluginRequest {
	return &plugins.PluginRequest{
		ServiceType: plugins.ServiceTypeSummary,
		Disease:     "stroke",
		Parameters:  map[string]float64{"age": 60},
		Prediction:  1,
	}
}

func TestExecuteSummaryCachesResult(t *testing.T) {
	gen := &fakeGenerator{output: "  Elevated stroke risk.  "}
	cache := newMemCache()
	p := NewMicroservicePipeline(gen, cache, 1800)

	first, err := p.Execute(context.Background(), summaryRequest())
	require.NoError(t, err)
	assert.Equal(t, "Elevated stroke risk.", first.Output)
	assert.False(t, first.CacheHit)
	require.Len(t, gen.calls, 1)
	assert.Equal(t, float32(60), gen.calls[0].TopK)
	assert.Equal(t, int32(400), gen.calls[0].MaxOutputTokens)
	assert.Contains(t, gen.calls[0].Prompt, "high risk of stroke")

	for _, ttl := range cache.ttl {
		assert.Equal(t, 30*time.Minute, ttl)
	}

	second, err := p.Execute(context.Background(), summaryRequest())
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, "Elevated stroke risk.", second.Output)
	assert.Len(t, gen.calls, 1)
}

func TestExecuteFallbackIsNotCached(t *testing.T) {
	gen := &fakeGenerator{output: ""}
	cache := newMemCache()
	p := NewMicroservicePipeline(gen, cache, 1800)

	resp, err := p.Execute(context.Background(), summaryRequest())
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Empty(t, cache.data)
}

func TestExecuteAssistantNotCached(t *testing.T) {
	gen := &fakeGenerator{output: "Drink water."}
	cache := newMemCache()
	p := NewMicroservicePipeline(gen, cache, 1800)

	req := &plugins.PluginRequest{ServiceType: plugins.ServiceTypeAssistant, Input: "How much water?"}
	_, err := p.Execute(context.Background(), req)
	require.NoError(t, err)
	_, err = p.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, gen.calls, 2)
	assert.Empty(t, cache.data)
}

func TestExecuteWithoutGenerator(t *testing.T) {
	p := NewMicroservicePipeline(nil, nil, 0)
	assert.False(t, p.Configured())

	_, err := p.Execute(context.Background(), summaryRequest())
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestExecuteValidationAndUnknownType(t *testing.T) {
	p := NewMicroservicePipeline(&fakeGenerator{}, nil, 0)

	_, err := p.Execute(context.Background(), &plugins.PluginRequest{ServiceType: plugins.ServiceTypeAssistant})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = p.Execute(context.Background(), &plugins.PluginRequest{ServiceType: "digest"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestExecuteGeneratorError(t *testing.T) {
	p := NewMicroservicePipeline(&fakeGenerator{err: errors.New("quota exceeded")}, nil, 0)
	_, err := p.Execute(context.Background(), summaryRequest())
	assert.ErrorContains(t, err, "quota exceeded")
}
