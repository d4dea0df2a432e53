package kafka

import (
	"context"
	"strings"

	"backoffice/internal/core/ports"

	"github.com/rs/zerolog"
	skafka "github.com/segmentio/kafka-go"
)

// Writer is the part of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher writes outbox messages to one topic per event type.
// Messages are keyed by aggregate id so events of one aggregate stay ordered.
type Publisher struct {
	writer      Writer
	topicPrefix string
	log         zerolog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher connects a writer to the given brokers. The writer has no fixed
// topic; every message carries its own.
func NewPublisher(brokers []string, topicPrefix string, log zerolog.Logger) *Publisher {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokers...),
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return NewPublisherWithWriter(w, topicPrefix, log)
}

// NewPublisherWithWriter allows injecting a test writer.
func NewPublisherWithWriter(w Writer, topicPrefix string, log zerolog.Logger) *Publisher {
	return &Publisher{
		writer:      w,
		topicPrefix: topicPrefix,
		log:         log.With().Str("component", "kafka_publisher").Logger(),
	}
}

// Publish writes the batch in one call. Either every message is acknowledged or
// an error is returned and the caller keeps the batch pending.
func (p *Publisher) Publish(ctx context.Context, msgs []ports.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	out := make([]skafka.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, skafka.Message{
			Topic: p.Topic(m.EventType),
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []skafka.Header{
				{Key: "message_id", Value: []byte(m.ID.String())},
				{Key: "event_type", Value: []byte(m.EventType)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, out...); err != nil {
		p.log.Error().Err(err).Int("messages", len(out)).Msg("kafka write failed")
		return err
	}

	p.log.Debug().Int("messages", len(out)).Msg("kafka batch published")
	return nil
}

// Topic returns the topic an event type is published to, e.g.
// "backoffice.manifest-finalized" for ManifestFinalized.
func (p *Publisher) Topic(eventType string) string {
	var b strings.Builder
	b.WriteString(p.topicPrefix)
	for i, r := range eventType {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
