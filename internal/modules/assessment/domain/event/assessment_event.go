package event

import (
	"time"

	"HealthPredict/internal/modules/assessment/domain/entity"
)

const (
	// EventTypeAssessmentCompleted 一次评估完成（预测服务已返回）
	EventTypeAssessmentCompleted = "assessment_completed"

	HeaderEventType = "event_type"
)

// AssessmentCompleted 评估完成事件，消费端据此落库
type AssessmentCompleted struct {
	RecordUuid  string             `json:"record_uuid"`
	UserUuid    string             `json:"user_uuid"`
	Disease     string             `json:"disease"`
	Prediction  int                `json:"prediction"`
	RiskStatus  string             `json:"risk_status"`
	Probability *float64           `json:"probability,omitempty"`
	Parameters  map[string]float64 `json:"parameters"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// FromRecord 由评估记录构造事件
func FromRecord(rec *entity.AssessmentRecord, params map[string]float64) AssessmentCompleted {
	return AssessmentCompleted{
		RecordUuid:  rec.Uuid,
		UserUuid:    rec.UserUuid,
		Disease:     rec.Disease,
		Prediction:  int(rec.Prediction),
		RiskStatus:  rec.RiskStatus,
		Probability: rec.Probability,
		Parameters:  params,
		OccurredAt:  rec.CreatedAt,
	}
}
