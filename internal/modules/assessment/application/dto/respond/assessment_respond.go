package respond

import (
	"time"

	"HealthPredict/internal/modules/assessment/domain/disease"
)

// AssessRespond 一次评估结果
type AssessRespond struct {
	RecordUuid  string             `json:"record_uuid"`
	Disease     string             `json:"disease"`
	Title       string             `json:"title"`
	Prediction  int                `json:"prediction"`
	RiskStatus  string             `json:"risk_status"`
	Headline    string             `json:"headline"` // 结果页横幅
	Probability *float64           `json:"probability,omitempty"`
	Parameters  map[string]float64 `json:"parameters"`
	Details     []disease.Detail   `json:"details"`
}

// Confidence 结果页展示的置信度，无概率时返回空串
func (r *AssessRespond) Confidence() string {
	if r == nil || r.Probability == nil {
		return ""
	}
	return disease.FormatPercent(*r.Probability)
}

type AssessmentItem struct {
	Uuid        string    `json:"uuid"`
	Disease     string    `json:"disease"`
	Title       string    `json:"title"`
	Prediction  int       `json:"prediction"`
	RiskStatus  string    `json:"risk_status"`
	Probability *float64  `json:"probability,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RiskOverview struct {
	Disease  string `json:"disease"`
	Title    string `json:"title"`
	Total    int64  `json:"total"`
	HighRisk int64  `json:"high_risk"`
}

// HistoryRespond 个人主页数据
type HistoryRespond struct {
	Items    []AssessmentItem `json:"items"`
	Overview []RiskOverview   `json:"overview"`
}

type AnalyzeReportRespond struct {
	Analysis string `json:"analysis"`
}

// DiseaseSummary 疾病列表项
type DiseaseSummary struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	CardTitle   string `json:"card_title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}
