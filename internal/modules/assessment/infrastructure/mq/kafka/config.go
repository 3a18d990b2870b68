package kafka

import (
	"strings"

	"github.com/IBM/sarama"
)

// Config 连接参数
type Config struct {
	Brokers  []string
	ClientID string
}

func newSaramaConfig(clientID string) *sarama.Config {
	sc := sarama.NewConfig()
	sc.Version = sarama.V2_8_0_0
	sc.ClientID = strings.TrimSpace(clientID)
	if sc.ClientID == "" {
		sc.ClientID = "HealthPredict"
	}
	return sc
}
