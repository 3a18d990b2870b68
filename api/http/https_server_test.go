package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"HealthPredict/internal/config"
	aiRequest "HealthPredict/internal/modules/ai/application/dto/request"
	aiRespond "HealthPredict/internal/modules/ai/application/dto/respond"
	"HealthPredict/internal/modules/assessment/application/dto/respond"
	"HealthPredict/internal/modules/assessment/domain/disease"
	userRequest "HealthPredict/internal/modules/user/application/dto/request"
	userRespond "HealthPredict/internal/modules/user/application/dto/respond"
	"HealthPredict/pkg/util/myjwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopUsers struct{}

func (nopUsers) Register(context.Context, userRequest.RegisterRequest) (*userRespond.RegisterRespond, error) {
	return &userRespond.RegisterRespond{}, nil
}

func (nopUsers) Login(context.Context, userRequest.LoginRequest) (*userRespond.LoginRespond, error) {
	return &userRespond.LoginRespond{}, nil
}

func (nopUsers) GetUserInfo(_ context.Context, uuid string) (*userRespond.UserInfoRespond, error) {
	return &userRespond.UserInfoRespond{Uuid: uuid}, nil
}

type nopAssessments struct{}

func (nopAssessments) Diseases() []respond.DiseaseSummary {
	out := make([]respond.DiseaseSummary, 0)
	for _, d := range disease.All() {
		out = append(out, respond.DiseaseSummary{Slug: d.Slug, Name: d.Name})
	}
	return out
}

func (nopAssessments) Disease(slug string) (*disease.Disease, error) {
	d, _ := disease.Lookup(slug)
	return d, nil
}

func (nopAssessments) Assess(context.Context, string, string, map[string]string) (*respond.AssessRespond, error) {
	return &respond.AssessRespond{}, nil
}

func (nopAssessments) History(context.Context, string, int) (*respond.HistoryRespond, error) {
	return &respond.HistoryRespond{}, nil
}

func (nopAssessments) AnalyzeReport(context.Context, string, io.Reader) (*respond.AnalyzeReportRespond, error) {
	return &respond.AnalyzeReportRespond{}, nil
}

type nopAI struct{}

func (nopAI) Summary(context.Context, aiRequest.SummaryRequest, string) (*aiRespond.SummaryRespond, error) {
	return &aiRespond.SummaryRespond{}, nil
}

func (nopAI) Assistant(context.Context, aiRequest.AssistantRequest, string) (*aiRespond.AssistantRespond, error) {
	return &aiRespond.AssistantRespond{}, nil
}

func newTestEngine(t *testing.T, checks map[string]HealthCheck) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf, _ := config.Load("")
	conf.JwtConfig.Key = "test-key"
	config.SetConfig(conf)

	ge, err := NewEngine(Deps{
		Config:      conf,
		Users:       nopUsers{},
		Assessments: nopAssessments{},
		AI:          nopAI{},
		Checks:      checks,
	})
	require.NoError(t, err)
	return ge
}

func get(ge http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	ge.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := get(newTestEngine(t, nil), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyzReportsFailingComponents(t *testing.T) {
	ge := newTestEngine(t, map[string]HealthCheck{
		"mysql":     func(context.Context) error { return nil },
		"predictor": func(context.Context) error { return errors.New("down") },
	})

	w := get(ge, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "predictor")
	assert.NotContains(t, w.Body.String(), "mysql")
}

func TestPublicAndProtectedAPI(t *testing.T) {
	ge := newTestEngine(t, nil)

	w := get(ge, "/api/diseases")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "diabetes")

	w = get(ge, "/api/assessments")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := myjwt.GenerateToken("U1", "ann", "ann@example.com")
	require.NoError(t, err)
	w = get(ge, "/api/auth/ping", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "U1")
}

func TestPagesAndStatic(t *testing.T) {
	ge := newTestEngine(t, nil)

	w := get(ge, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Health Prediction Services")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	w = get(ge, "/static/style.css")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(ge, "/heart")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Heart Disease Risk Assessment")
}
