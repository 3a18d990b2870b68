package predictor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"HealthPredict/internal/modules/assessment/domain/disease"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictSendsOrderedPayload(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"disease":"diabetes","prediction":1,"risk_status":"High Risk"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", 5*time.Second)
	payload := disease.Payload{
		{Name: "gender", Value: 1, Integer: true},
		{Name: "age", Value: 45.5},
	}
	res, err := c.Predict(context.Background(), "diabetes", payload)
	require.NoError(t, err)

	assert.Equal(t, "/predict/diabetes", gotPath)
	assert.Equal(t, `{"gender":1,"age":45.5}`, gotBody)
	assert.Equal(t, 1, res.Prediction)
	assert.Equal(t, "High Risk", res.RiskStatus)
	assert.Nil(t, res.Probability)
}

func TestPredictParsesProbability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prediction":0,"risk_status":"Low Risk","probability":0.12}`))
	}))
	defer srv.Close()

	res, err := NewHTTPClient(srv.URL, time.Second).Predict(context.Background(), "stroke", nil)
	require.NoError(t, err)
	require.NotNil(t, res.Probability)
	assert.InDelta(t, 0.12, *res.Probability, 1e-9)
	assert.Equal(t, "stroke", res.Disease)
}

func TestPredictStatusErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Disease model not found"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).Predict(context.Background(), "cancer", nil)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.Equal(t, "Disease model not found", se.Detail)
}

func TestDetailOfFallsBackToBody(t *testing.T) {
	assert.Equal(t, "upstream exploded", detailOf([]byte(" upstream exploded \n")))
	assert.Equal(t, `[{"loc":["body","age"]}]`, detailOf([]byte(`{"detail":[{"loc":["body","age"]}]}`)))
}

func TestAnalyzeReportUploadsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze-pdf", r.URL.Path)
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "report.pdf", hdr.Filename)
		assert.Equal(t, "%PDF-1.4 test", string(b))
		_ = json.NewEncoder(w).Encode(map[string]string{"analysis": "All values within range."})
	}))
	defer srv.Close()

	out, err := NewHTTPClient(srv.URL, time.Second).AnalyzeReport(context.Background(), "report.pdf", strings.NewReader("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, "All values within range.", out)
}

func TestPingReportsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	assert.Error(t, NewHTTPClient(srv.URL, time.Second).Ping(context.Background()))
}
