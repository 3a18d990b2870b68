package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"HealthPredict/internal/modules/assessment/domain/disease"
)

// Result 预测服务返回
type Result struct {
	Disease     string   `json:"disease"`
	Prediction  int      `json:"prediction"`
	RiskStatus  string   `json:"risk_status"`
	Probability *float64 `json:"probability,omitempty"`
}

// Client 外部疾病预测服务
type Client interface {
	Predict(ctx context.Context, slug string, payload disease.Payload) (*Result, error)
	// AnalyzeReport 上传 PDF 报告，返回分析文本
	AnalyzeReport(ctx context.Context, filename string, r io.Reader) (string, error)
	Ping(ctx context.Context) error
}

// StatusError 预测服务返回非 2xx
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("prediction service error (status %d): %s", e.Status, e.Detail)
}

type httpClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient 创建预测服务客户端
func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) Predict(ctx context.Context, slug string, payload disease.Payload) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	endpoint := c.baseURL + "/predict/" + url.PathEscape(slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode prediction: %w", err)
	}
	if result.Disease == "" {
		result.Disease = slug
	}
	return &result, nil
}

func (c *httpClient) AnalyzeReport(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy report: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze-pdf", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	respBody, err := c.do(req)
	if err != nil {
		return "", err
	}

	var out struct {
		Analysis string `json:"analysis"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode analysis: %w", err)
	}
	return out.Analysis, nil
}

func (c *httpClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	_, err = c.do(req)
	return err
}

func (c *httpClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction service request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.StatusCode, Detail: detailOf(body)}
	}
	return body, nil
}

// detailOf 提取 {"detail": ...}，取不到时返回原始 body
func detailOf(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			return s
		}
		return string(payload.Detail)
	}
	return strings.TrimSpace(string(body))
}
