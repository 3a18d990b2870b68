package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"HealthPredict/internal/modules/assessment/application/dto/respond"
	"HealthPredict/internal/modules/assessment/domain/disease"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/xerr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	userUuid string
	slug     string
	values   map[string]string
	filename string
	body     string
}

func (s *stubService) Diseases() []respond.DiseaseSummary {
	return []respond.DiseaseSummary{{Slug: "diabetes", Name: "Diabetes"}}
}

func (s *stubService) Disease(slug string) (*disease.Disease, error) {
	d, ok := disease.Lookup(slug)
	if !ok {
		return nil, xerr.New(xerr.NotFound, "Disease model not found")
	}
	return d, nil
}

func (s *stubService) Assess(_ context.Context, userUuid, slug string, values map[string]string) (*respond.AssessRespond, error) {
	s.userUuid, s.slug, s.values = userUuid, slug, values
	if slug != "diabetes" {
		return nil, xerr.New(xerr.NotFound, "Disease model not found")
	}
	return &respond.AssessRespond{Disease: slug, Prediction: 1, RiskStatus: "High Risk"}, nil
}

func (s *stubService) History(_ context.Context, userUuid string, limit int) (*respond.HistoryRespond, error) {
	s.userUuid = userUuid
	return &respond.HistoryRespond{Items: []respond.AssessmentItem{}, Overview: []respond.RiskOverview{}}, nil
}

func (s *stubService) AnalyzeReport(_ context.Context, filename string, r io.Reader) (*respond.AnalyzeReportRespond, error) {
	b, _ := io.ReadAll(r)
	s.filename, s.body = filename, string(b)
	return &respond.AnalyzeReportRespond{Analysis: "looks fine"}, nil
}

func newRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAssessmentHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(constants.ContextUserUUID, "U1") })
	r.GET("/api/diseases", h.ListDiseases)
	r.GET("/api/diseases/:disease", h.GetDisease)
	r.POST("/api/predict/:disease", h.Predict)
	r.GET("/api/assessments", h.History)
	r.POST("/api/analyze-pdf", h.AnalyzeReport)
	return r
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestPredictConvertsJSONValues(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	body := `{"gender":0,"age":45.5,"bmi":"27.1","hypertension":true}`
	req := httptest.NewRequest(nethttp.MethodPost, "/api/predict/diabetes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, "U1", svc.userUuid)
	assert.Equal(t, "45.5", svc.values["age"])
	assert.Equal(t, "27.1", svc.values["bmi"])
	assert.Equal(t, "1", svc.values["hypertension"])

	var data respond.AssessRespond
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "High Risk", data.RiskStatus)
}

func TestPredictUnknownDiseaseIs404(t *testing.T) {
	r := newRouter(&stubService{})
	req := httptest.NewRequest(nethttp.MethodPost, "/api/predict/flu", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusNotFound, w.Code)
	assert.Equal(t, "Disease model not found", decode(t, w).Message)
}

func TestPredictRejectsMalformedJSON(t *testing.T) {
	r := newRouter(&stubService{})
	req := httptest.NewRequest(nethttp.MethodPost, "/api/predict/diabetes", strings.NewReader(`{"age":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.True(t, strings.HasPrefix(decode(t, w).Message, "Invalid input data: "))
}

func TestGetDiseaseSchema(t *testing.T) {
	r := newRouter(&stubService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(nethttp.MethodGet, "/api/diseases/heart", nil))

	require.Equal(t, nethttp.StatusOK, w.Code)
	var d disease.Disease
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &d))
	assert.Equal(t, "Heart Disease", d.Name)
	assert.NotEmpty(t, d.Fields)
}

func TestAnalyzeReportUpload(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "labs.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(nethttp.MethodPost, "/api/analyze-pdf", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, "labs.pdf", svc.filename)
	assert.Equal(t, "%PDF-1.4", svc.body)
}

func TestAnalyzeReportWithoutFile(t *testing.T) {
	r := newRouter(&stubService{})
	req := httptest.NewRequest(nethttp.MethodPost, "/api/analyze-pdf", strings.NewReader(""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}
