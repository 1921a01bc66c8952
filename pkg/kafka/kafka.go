package kafka

import (
	"github.com/IBM/sarama"
)

const (
	// SearchTopic carries one audit event per filtered listing request.
	SearchTopic = "bookshelf.search"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

// Enabled reports whether a broker is configured at all; the service runs
// fine without one.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
