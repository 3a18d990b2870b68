package mq

import "context"

// Message 一条消息，Headers 会转成 Kafka record header
type Message struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers map[string]string
}

type PublishResult struct {
	Partition int32
	Offset    int64
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) (PublishResult, error)
	Close() error
}

// Handler 返回 nil 才会提交 offset
type Handler interface {
	Handle(ctx context.Context, msg Message) error
}

type Consumer interface {
	Run(ctx context.Context, handler Handler) error
	Close() error
}
