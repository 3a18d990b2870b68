package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"HealthPredict/internal/modules/assessment/domain/entity"
	"HealthPredict/internal/modules/assessment/domain/event"
	"HealthPredict/internal/modules/assessment/domain/repository"
	"HealthPredict/internal/modules/assessment/infrastructure/mq"
	"HealthPredict/pkg/zlog"

	"go.uber.org/zap"
)

// AssessmentConsumerWorker 消费评估完成事件并写入历史表
type AssessmentConsumerWorker struct {
	consumer mq.Consumer
	repo     repository.AssessmentRepository
}

func NewAssessmentConsumerWorker(consumer mq.Consumer, repo repository.AssessmentRepository) *AssessmentConsumerWorker {
	return &AssessmentConsumerWorker{consumer: consumer, repo: repo}
}

func (w *AssessmentConsumerWorker) Run(ctx context.Context) error {
	if w == nil || w.consumer == nil {
		return errors.New("consumer is nil")
	}
	if w.repo == nil {
		return errors.New("assessment repo is nil")
	}
	return w.consumer.Run(ctx, w)
}

// Handle 重复投递按 record_uuid 去重；脏消息直接跳过
func (w *AssessmentConsumerWorker) Handle(ctx context.Context, msg mq.Message) error {
	if t := msg.Headers[event.HeaderEventType]; t != "" && t != event.EventTypeAssessmentCompleted {
		return nil
	}

	var ev event.AssessmentCompleted
	if err := json.Unmarshal(msg.Value, &ev); err != nil || ev.RecordUuid == "" || ev.UserUuid == "" {
		zlog.Warn("assessment consumer invalid event", zap.String("topic", msg.Topic), zap.Error(err))
		return nil
	}

	exists, err := w.repo.ExistsByUuid(ctx, ev.RecordUuid)
	if err != nil {
		zlog.Warn("assessment consumer check exists failed", zap.String("record_uuid", ev.RecordUuid), zap.Error(err))
		return err
	}
	if exists {
		return nil
	}

	params := "{}"
	if len(ev.Parameters) > 0 {
		if b, err := json.Marshal(ev.Parameters); err == nil {
			params = string(b)
		}
	}
	createdAt := ev.OccurredAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	rec := &entity.AssessmentRecord{
		Uuid:        ev.RecordUuid,
		UserUuid:    ev.UserUuid,
		Disease:     ev.Disease,
		Prediction:  int8(ev.Prediction),
		RiskStatus:  ev.RiskStatus,
		Probability: ev.Probability,
		Parameters:  params,
		CreatedAt:   createdAt,
	}
	if err := w.repo.Create(ctx, rec); err != nil {
		zlog.Warn("assessment consumer create record failed", zap.String("record_uuid", ev.RecordUuid), zap.Error(err))
		return err
	}

	zlog.Info("assessment recorded",
		zap.String("record_uuid", ev.RecordUuid),
		zap.String("user_uuid", ev.UserUuid),
		zap.String("disease", ev.Disease))
	return nil
}
