package initial

import (
	"HealthPredict/internal/config"
	"HealthPredict/internal/modules/assessment/domain/repository"
	"HealthPredict/internal/modules/assessment/infrastructure/mq"
	"HealthPredict/internal/modules/assessment/infrastructure/mq/kafka"
	"HealthPredict/internal/modules/assessment/infrastructure/queue"
	"HealthPredict/internal/modules/assessment/infrastructure/recorder"
	"HealthPredict/pkg/zlog"

	"go.uber.org/zap"
)

// Recording 评估历史写入链路
type Recording struct {
	Recorder  recorder.Recorder
	Worker    *queue.AssessmentConsumerWorker // 仅 Kafka 模式
	publisher mq.Publisher
	consumer  mq.Consumer
}

// InitRecording 配置了 brokers 时走 Kafka 异步落库，否则同步写库
// Kafka 初始化失败同样降级为同步写库
func InitRecording(conf *config.Config, repo repository.AssessmentRepository) *Recording {
	direct := &Recording{Recorder: recorder.NewDirectRecorder(repo)}

	kc := conf.KafkaConfig
	if len(kc.Brokers) == 0 {
		zlog.Info("Kafka 未配置，评估历史同步写库")
		return direct
	}

	base := kafka.Config{Brokers: kc.Brokers, ClientID: kc.ClientID}
	partitions := kc.Partitions
	if partitions <= 0 {
		partitions = 3
	}
	replication := kc.Replication
	if replication <= 0 {
		replication = 1
	}
	if err := kafka.EnsureTopic(base, kc.AssessmentTopic, partitions, replication); err != nil {
		zlog.Warn("ensure kafka topic failed", zap.String("topic", kc.AssessmentTopic), zap.Error(err))
	}

	pub, err := kafka.NewPublisher(base)
	if err != nil {
		zlog.Error("create kafka publisher failed, fallback to direct recorder", zap.Error(err))
		return direct
	}
	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Config:  base,
		GroupID: kc.ConsumerGroupID,
		Topics:  []string{kc.AssessmentTopic},
	})
	if err != nil {
		_ = pub.Close()
		zlog.Error("create kafka consumer failed, fallback to direct recorder", zap.Error(err))
		return direct
	}

	zlog.Info("Kafka 已启用", zap.Strings("brokers", kc.Brokers), zap.String("topic", kc.AssessmentTopic))
	return &Recording{
		Recorder:  recorder.NewKafkaRecorder(pub, kc.AssessmentTopic),
		Worker:    queue.NewAssessmentConsumerWorker(consumer, repo),
		publisher: pub,
		consumer:  consumer,
	}
}

// Close 先停消费者再关生产者
func (r *Recording) Close() {
	if r == nil {
		return
	}
	if r.consumer != nil {
		if err := r.consumer.Close(); err != nil {
			zlog.Warn("close kafka consumer failed", zap.Error(err))
		}
	}
	if r.publisher != nil {
		if err := r.publisher.Close(); err != nil {
			zlog.Warn("close kafka publisher failed", zap.Error(err))
		}
	}
}
