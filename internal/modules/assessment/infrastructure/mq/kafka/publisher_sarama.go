package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	"HealthPredict/internal/modules/assessment/infrastructure/mq"

	"github.com/IBM/sarama"
)

type saramaPublisher struct {
	p sarama.SyncProducer
}

// NewPublisher 幂等同步生产者，同一用户的事件按 key 落到同一分区
func NewPublisher(cfg Config) (mq.Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers is empty")
	}

	sc := newSaramaConfig(cfg.ClientID)
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 5
	sc.Producer.Retry.Backoff = 100 * time.Millisecond
	sc.Producer.Idempotent = true
	sc.Net.MaxOpenRequests = 1
	sc.Producer.Partitioner = sarama.NewHashPartitioner

	p, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, err
	}
	return &saramaPublisher{p: p}, nil
}

func (s *saramaPublisher) Publish(ctx context.Context, msg mq.Message) (mq.PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return mq.PublishResult{}, err
	}
	if strings.TrimSpace(msg.Topic) == "" {
		return mq.PublishResult{}, errors.New("kafka topic is empty")
	}

	m := &sarama.ProducerMessage{
		Topic:   msg.Topic,
		Key:     sarama.ByteEncoder(msg.Key),
		Value:   sarama.ByteEncoder(msg.Value),
		Headers: toHeaders(msg.Headers),
	}

	partition, offset, err := s.p.SendMessage(m)
	if err != nil {
		return mq.PublishResult{}, err
	}
	return mq.PublishResult{Partition: partition, Offset: offset}, nil
}

func (s *saramaPublisher) Close() error {
	if s == nil || s.p == nil {
		return nil
	}
	return s.p.Close()
}

func toHeaders(h map[string]string) []sarama.RecordHeader {
	if len(h) == 0 {
		return nil
	}
	out := make([]sarama.RecordHeader, 0, len(h))
	for k, v := range h {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out = append(out, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	return out
}

func fromHeaders(h []*sarama.RecordHeader) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for _, hdr := range h {
		if hdr == nil || len(hdr.Key) == 0 {
			continue
		}
		out[string(hdr.Key)] = string(hdr.Value)
	}
	return out
}
