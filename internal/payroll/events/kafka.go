// Package events publishes payroll events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/telemetry"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultTopic = "utxopayroll-transactions"

	eventHeader         = "event"
	eventTxSubmitted    = "transaction_submitted"
	defaultBatchTimeout = 100 * time.Millisecond
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers []string
	Topic   string
}

// Publisher writes TransactionSubmitted events keyed by transaction hash.
type Publisher struct {
	writer Writer
	tracer trace.Tracer
}

func NewPublisher(cfg Config) (*Publisher, error) {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		cfg.Topic = DefaultTopic
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: defaultBatchTimeout,
		RequiredAcks: kafka.RequireAll,
	}
	return newPublisher(writer), nil
}

func newPublisher(writer Writer) *Publisher {
	return &Publisher{writer: writer, tracer: otel.Tracer("utxopayroll/events")}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// PublishSubmitted emits one event; the trace context travels in the headers.
func (p *Publisher) PublishSubmitted(ctx context.Context, event model.TransactionSubmitted) error {
	ctx, span := p.tracer.Start(ctx, "payroll.publish_submitted", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(
		attribute.String("payroll.run_id", event.RunID),
		attribute.String("tx.hash", event.TxHash),
		attribute.String("network", string(event.Network)),
	)

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("encode transaction event: %w", err)
	}

	headers := []kafka.Header{{Key: eventHeader, Value: []byte(eventTxSubmitted)}}
	telemetry.InjectKafkaHeaders(ctx, &headers)

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.TxHash),
		Value:   payload,
		Headers: headers,
		Time:    event.SubmittedAt,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("write transaction event: %w", err)
	}
	return nil
}
