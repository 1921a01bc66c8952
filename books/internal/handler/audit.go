package handler

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Naggafin/bookshelf/pkg/kafka"
)

// Auditor records that a filtered listing was served. Delivery failures are
// logged, never surfaced to the caller.
type Auditor interface {
	SearchPerformed(entity string, params url.Values)
}

type SearchEvent struct {
	EventID string     `json:"eventId"`
	Entity  string     `json:"entity"`
	Params  url.Values `json:"params"`
	At      time.Time  `json:"at"`
}

func NewAuditor(producer sarama.SyncProducer, log *zap.Logger) Auditor {
	if producer == nil {
		return noopAuditor{}
	}
	return &auditor{
		producer: producer,
		log:      log.Named("audit"),
	}
}

type auditor struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func (a *auditor) SearchPerformed(entity string, params url.Values) {
	ev := SearchEvent{
		EventID: uuid.NewString(),
		Entity:  entity,
		Params:  params,
		At:      time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		a.log.Warn("marshal search event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.SearchTopic, Value: sarama.ByteEncoder(data)}
	if _, _, err := a.producer.SendMessage(msg); err != nil {
		a.log.Warn("send search event", zap.Error(err))
	}
}

type noopAuditor struct{}

func (noopAuditor) SearchPerformed(string, url.Values) {}
