package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"HealthPredict/internal/modules/assessment/application/dto/respond"
	"HealthPredict/internal/modules/assessment/domain/disease"
	"HealthPredict/internal/modules/assessment/domain/entity"
	"HealthPredict/internal/modules/assessment/domain/repository"
	"HealthPredict/internal/modules/assessment/infrastructure/predictor"
	"HealthPredict/internal/modules/assessment/infrastructure/recorder"
	"HealthPredict/pkg/metrics"
	"HealthPredict/pkg/util"
	"HealthPredict/pkg/xerr"
	"HealthPredict/pkg/zlog"

	"go.uber.org/zap"
)

const (
	predictionFailedPrefix = "Failed to get prediction from the model: "
	defaultHistoryLimit    = 20
	maxHistoryLimit        = 100
)

var (
	ErrDiseaseNotFound = xerr.New(xerr.NotFound, "Disease model not found")
	ErrNotPDF          = xerr.New(xerr.BadRequest, "Please upload a PDF file")
)

// AssessmentService 疾病评估应用服务
type AssessmentService interface {
	Diseases() []respond.DiseaseSummary
	Disease(slug string) (*disease.Disease, error)
	Assess(ctx context.Context, userUuid, slug string, values map[string]string) (*respond.AssessRespond, error)
	History(ctx context.Context, userUuid string, limit int) (*respond.HistoryRespond, error)
	AnalyzeReport(ctx context.Context, filename string, r io.Reader) (*respond.AnalyzeReportRespond, error)
}

type assessmentServiceImpl struct {
	predictor predictor.Client
	recorder  recorder.Recorder
	repo      repository.AssessmentRepository
}

// NewAssessmentService repo 仅用于读历史，写入统一走 recorder
func NewAssessmentService(p predictor.Client, rec recorder.Recorder, repo repository.AssessmentRepository) AssessmentService {
	return &assessmentServiceImpl{predictor: p, recorder: rec, repo: repo}
}

func (s *assessmentServiceImpl) Diseases() []respond.DiseaseSummary {
	all := disease.All()
	out := make([]respond.DiseaseSummary, 0, len(all))
	for _, d := range all {
		out = append(out, respond.DiseaseSummary{
			Slug:        d.Slug,
			Name:        d.Name,
			CardTitle:   d.CardTitle,
			Description: d.Description,
			Content:     d.Content,
		})
	}
	return out
}

func (s *assessmentServiceImpl) Disease(slug string) (*disease.Disease, error) {
	d, ok := disease.Lookup(slug)
	if !ok {
		return nil, ErrDiseaseNotFound
	}
	return d, nil
}

func (s *assessmentServiceImpl) Assess(ctx context.Context, userUuid, slug string, values map[string]string) (*respond.AssessRespond, error) {
	d, ok := disease.Lookup(slug)
	if !ok {
		return nil, ErrDiseaseNotFound
	}

	payload, err := d.Validate(values)
	if err != nil {
		return nil, xerr.New(xerr.BadRequest, err.Error())
	}

	start := time.Now()
	result, err := s.predictor.Predict(ctx, slug, payload)
	if err != nil {
		metrics.ObservePredictorError(slug)
		zlog.Error("predict failed",
			zap.String("disease", slug),
			zap.String("user_uuid", userUuid),
			zap.Error(err))

		var se *predictor.StatusError
		if errors.As(err, &se) {
			return nil, xerr.New(xerr.BadGateway, predictionFailedPrefix+se.Detail)
		}
		return nil, xerr.New(xerr.BadGateway, predictionFailedPrefix+"prediction service unavailable")
	}

	riskStatus := strings.TrimSpace(result.RiskStatus)
	headline := riskStatus
	if riskStatus == "" {
		riskStatus = "Low Risk"
		if result.Prediction == 1 {
			riskStatus = "High Risk"
		}
		headline = d.RiskLabel(result.Prediction)
	}

	params := payload.Map()
	resp := &respond.AssessRespond{
		RecordUuid:  util.NewID("A"),
		Disease:     slug,
		Title:       d.Name,
		Prediction:  result.Prediction,
		RiskStatus:  riskStatus,
		Headline:    headline,
		Probability: result.Probability,
		Parameters:  params,
		Details:     d.Describe(params),
	}

	metrics.ObserveAssessment(slug, riskLabel(result.Prediction))
	zlog.Info("assessment completed",
		zap.String("disease", slug),
		zap.String("user_uuid", userUuid),
		zap.Int("prediction", result.Prediction),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()))

	if s.recorder != nil && userUuid != "" {
		s.record(ctx, userUuid, resp)
	}
	return resp, nil
}

// record 历史写入失败不影响本次结果
func (s *assessmentServiceImpl) record(ctx context.Context, userUuid string, resp *respond.AssessRespond) {
	raw, err := json.Marshal(resp.Parameters)
	if err != nil {
		raw = []byte("{}")
	}
	rec := &entity.AssessmentRecord{
		Uuid:        resp.RecordUuid,
		UserUuid:    userUuid,
		Disease:     resp.Disease,
		Prediction:  int8(resp.Prediction),
		RiskStatus:  resp.RiskStatus,
		Probability: resp.Probability,
		Parameters:  string(raw),
		CreatedAt:   time.Now(),
	}
	if err := s.recorder.Record(ctx, rec, resp.Parameters); err != nil {
		zlog.Warn("record assessment failed",
			zap.String("record_uuid", rec.Uuid),
			zap.String("user_uuid", userUuid),
			zap.Error(err))
	}
}

func (s *assessmentServiceImpl) History(ctx context.Context, userUuid string, limit int) (*respond.HistoryRespond, error) {
	if userUuid == "" {
		return nil, xerr.ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.repo.ListByUser(ctx, userUuid, limit)
	if err != nil {
		zlog.Error("list assessments failed", zap.String("user_uuid", userUuid), zap.Error(err))
		return nil, xerr.ErrServerError
	}
	counts, err := s.repo.CountByUser(ctx, userUuid)
	if err != nil {
		zlog.Error("count assessments failed", zap.String("user_uuid", userUuid), zap.Error(err))
		return nil, xerr.ErrServerError
	}

	out := &respond.HistoryRespond{
		Items:    make([]respond.AssessmentItem, 0, len(records)),
		Overview: make([]respond.RiskOverview, 0, len(counts)),
	}
	for _, r := range records {
		out.Items = append(out.Items, respond.AssessmentItem{
			Uuid:        r.Uuid,
			Disease:     r.Disease,
			Title:       titleOf(r.Disease),
			Prediction:  int(r.Prediction),
			RiskStatus:  r.RiskStatus,
			Probability: r.Probability,
			CreatedAt:   r.CreatedAt,
		})
	}

	// 概览按首页疾病顺序输出
	byDisease := make(map[string]entity.RiskCount, len(counts))
	for _, c := range counts {
		byDisease[c.Disease] = c
	}
	for _, d := range disease.All() {
		c, ok := byDisease[d.Slug]
		if !ok {
			continue
		}
		out.Overview = append(out.Overview, respond.RiskOverview{
			Disease:  d.Slug,
			Title:    d.Name,
			Total:    c.Total,
			HighRisk: c.HighRisk,
		})
	}
	return out, nil
}

func (s *assessmentServiceImpl) AnalyzeReport(ctx context.Context, filename string, r io.Reader) (*respond.AnalyzeReportRespond, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, ErrNotPDF
	}
	analysis, err := s.predictor.AnalyzeReport(ctx, filepath.Base(filename), r)
	if err != nil {
		zlog.Error("analyze report failed", zap.String("filename", filename), zap.Error(err))
		var se *predictor.StatusError
		if errors.As(err, &se) {
			return nil, xerr.New(xerr.BadGateway, "Failed to analyze the document: "+se.Detail)
		}
		return nil, xerr.New(xerr.BadGateway, "Failed to analyze the document")
	}
	return &respond.AnalyzeReportRespond{Analysis: analysis}, nil
}

func riskLabel(prediction int) string {
	if prediction == 1 {
		return "high"
	}
	return "low"
}

func titleOf(slug string) string {
	if d, ok := disease.Lookup(slug); ok {
		return d.Name
	}
	return slug
}
