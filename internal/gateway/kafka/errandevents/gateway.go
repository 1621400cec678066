package errandevents

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"errandgo/internal/entities"
)

type Gateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChanged sends one lifecycle event. The errand id is the message
// key so every event for one errand lands on the same partition in order.
func (g *Gateway) PublishStatusChanged(_ context.Context, event entities.ErrandEvent) error {
	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("gateway errand events, marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.ErrandID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	_, _, err = g.producer.SendMessage(message)
	EventPublishDuration.WithLabelValues(event.Status.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		EventsPublishedTotal.WithLabelValues(event.Status.String(), "error").Inc()
		return fmt.Errorf("gateway errand events, publish %d: %w", event.ErrandID, err)
	}

	EventsPublishedTotal.WithLabelValues(event.Status.String(), "ok").Inc()
	return nil
}
