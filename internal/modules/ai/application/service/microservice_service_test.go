package service

import (
	"context"
	"errors"
	"testing"

	"HealthPredict/internal/modules/ai/application/dto/request"
	"HealthPredict/internal/modules/ai/infrastructure/llm"
	"HealthPredict/internal/modules/ai/infrastructure/pipeline"
	"HealthPredict/pkg/xerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedGenerator struct {
	output string
	err    error
	last   llm.GenerateRequest
}

func (g *scriptedGenerator) Generate(_ context.Context, req llm.GenerateRequest) (string, error) {
	g.last = req
	return g.output, g.err
}

func newService(gen llm.Generator) AIMicroserviceService {
	return NewAIMicroserviceService(pipeline.NewMicroservicePipeline(gen, nil, 1800))
}

func codeOf(t *testing.T, err error) *xerr.CodeError {
	t.Helper()
	e, ok := xerr.As(err)
	require.True(t, ok, "expected CodeError, got %v", err)
	return e
}

func TestSummaryReturnsModelText(t *testing.T) {
	gen := &scriptedGenerator{output: "Your markers look stable."}
	svc := newService(gen)

	resp, err := svc.Summary(context.Background(), request.SummaryRequest{
		Disease:    "thyroid",
		Parameters: map[string]float64{"age": 33},
	}, "U1")
	require.NoError(t, err)
	assert.Equal(t, "Your markers look stable.", resp.Summary)
	assert.Contains(t, gen.last.Prompt, "thyroid disorder")
}

func TestSummaryWithoutKey(t *testing.T) {
	svc := newService(nil)
	_, err := svc.Summary(context.Background(), request.SummaryRequest{Disease: "heart"}, "U1")
	e := codeOf(t, err)
	assert.Equal(t, xerr.InternalServerError, e.Code)
	assert.Equal(t, "Gemini API key not configured", e.Message)
}

func TestSummaryModelFailure(t *testing.T) {
	svc := newService(&scriptedGenerator{err: errors.New("503")})
	_, err := svc.Summary(context.Background(), request.SummaryRequest{Disease: "heart"}, "U1")
	assert.Equal(t, "Failed to get summary from AI", codeOf(t, err).Message)
}

func TestSummaryInvalidInput(t *testing.T) {
	svc := newService(&scriptedGenerator{output: "x"})
	_, err := svc.Summary(context.Background(), request.SummaryRequest{}, "U1")
	e := codeOf(t, err)
	assert.Equal(t, xerr.BadRequest, e.Code)
	assert.Equal(t, "disease is required", e.Message)
}

func TestAssistant(t *testing.T) {
	gen := &scriptedGenerator{output: "Aim for 7-9 hours."}
	svc := newService(gen)

	_, err := svc.Assistant(context.Background(), request.AssistantRequest{Message: " "}, "U1")
	assert.Equal(t, xerr.BadRequest, codeOf(t, err).Code)

	resp, err := svc.Assistant(context.Background(), request.AssistantRequest{Message: "How much sleep?"}, "U1")
	require.NoError(t, err)
	assert.Equal(t, "Aim for 7-9 hours.", resp.Message)

	gen.err = errors.New("boom")
	_, err = svc.Assistant(context.Background(), request.AssistantRequest{Message: "How much sleep?"}, "U1")
	assert.Equal(t, "Failed to get response from AI", codeOf(t, err).Message)
}
