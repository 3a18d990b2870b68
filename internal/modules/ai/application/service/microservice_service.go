package service

import (
	"context"
	"errors"
	"strings"

	"HealthPredict/internal/modules/ai/application/dto/request"
	"HealthPredict/internal/modules/ai/application/dto/respond"
	"HealthPredict/internal/modules/ai/infrastructure/llm"
	"HealthPredict/internal/modules/ai/infrastructure/pipeline"
	"HealthPredict/internal/modules/ai/infrastructure/plugins"
	"HealthPredict/pkg/xerr"
)

var (
	ErrSummaryFailed   = xerr.New(xerr.InternalServerError, "Failed to get summary from AI")
	ErrAssistantFailed = xerr.New(xerr.InternalServerError, "Failed to get response from AI")
	ErrNotConfigured   = xerr.New(xerr.InternalServerError, llm.ErrNotConfigured.Error())
	ErrMessageRequired = xerr.New(xerr.BadRequest, "Message is required")
)

// AIMicroserviceService 诊断摘要与健康问答
type AIMicroserviceService interface {
	Summary(ctx context.Context, req request.SummaryRequest, userUuid string) (*respond.SummaryRespond, error)
	Assistant(ctx context.Context, req request.AssistantRequest, userUuid string) (*respond.AssistantRespond, error)
}

type aiMicroserviceServiceImpl struct {
	pipeline *pipeline.MicroservicePipeline
}

func NewAIMicroserviceService(p *pipeline.MicroservicePipeline) AIMicroserviceService {
	return &aiMicroserviceServiceImpl{pipeline: p}
}

func (s *aiMicroserviceServiceImpl) Summary(ctx context.Context, req request.SummaryRequest, userUuid string) (*respond.SummaryRespond, error) {
	resp, err := s.pipeline.Execute(ctx, &plugins.PluginRequest{
		UserUuid:    userUuid,
		ServiceType: plugins.ServiceTypeSummary,
		Disease:     strings.TrimSpace(req.Disease),
		Parameters:  req.Parameters,
		Prediction:  req.Prediction,
		Probability: req.Probability,
	})
	if err != nil {
		return nil, mapError(err, ErrSummaryFailed)
	}
	return &respond.SummaryRespond{Summary: resp.Output, CacheHit: resp.CacheHit}, nil
}

func (s *aiMicroserviceServiceImpl) Assistant(ctx context.Context, req request.AssistantRequest, userUuid string) (*respond.AssistantRespond, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}
	resp, err := s.pipeline.Execute(ctx, &plugins.PluginRequest{
		UserUuid:    userUuid,
		ServiceType: plugins.ServiceTypeAssistant,
		Input:       req.Message,
	})
	if err != nil {
		return nil, mapError(err, ErrAssistantFailed)
	}
	return &respond.AssistantRespond{Message: resp.Output}, nil
}

func mapError(err error, fallback *xerr.CodeError) error {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return ErrNotConfigured
	case errors.Is(err, pipeline.ErrValidation):
		return xerr.New(xerr.BadRequest, strings.TrimPrefix(err.Error(), pipeline.ErrValidation.Error()+": "))
	default:
		return fallback
	}
}
