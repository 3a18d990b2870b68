package recorder

import (
	"context"
	"encoding/json"
	"fmt"

	"HealthPredict/internal/modules/assessment/domain/entity"
	"HealthPredict/internal/modules/assessment/domain/event"
	"HealthPredict/internal/modules/assessment/domain/repository"
	"HealthPredict/internal/modules/assessment/infrastructure/mq"
)

// Recorder 保存评估历史
type Recorder interface {
	Record(ctx context.Context, rec *entity.AssessmentRecord, params map[string]float64) error
}

type directRecorder struct {
	repo repository.AssessmentRepository
}

// NewDirectRecorder 同步写库（未配置 Kafka 时使用）
func NewDirectRecorder(repo repository.AssessmentRepository) Recorder {
	return &directRecorder{repo: repo}
}

func (r *directRecorder) Record(ctx context.Context, rec *entity.AssessmentRecord, _ map[string]float64) error {
	return r.repo.Create(ctx, rec)
}

type kafkaRecorder struct {
	pub   mq.Publisher
	topic string
}

// NewKafkaRecorder 发布 assessment_completed 事件，由 AssessmentConsumerWorker 落库
func NewKafkaRecorder(pub mq.Publisher, topic string) Recorder {
	return &kafkaRecorder{pub: pub, topic: topic}
}

func (r *kafkaRecorder) Record(ctx context.Context, rec *entity.AssessmentRecord, params map[string]float64) error {
	value, err := json.Marshal(event.FromRecord(rec, params))
	if err != nil {
		return fmt.Errorf("marshal assessment event: %w", err)
	}
	_, err = r.pub.Publish(ctx, mq.Message{
		Topic:   r.topic,
		Key:     []byte(rec.UserUuid),
		Value:   value,
		Headers: map[string]string{event.HeaderEventType: event.EventTypeAssessmentCompleted},
	})
	if err != nil {
		return fmt.Errorf("publish assessment event: %w", err)
	}
	return nil
}
