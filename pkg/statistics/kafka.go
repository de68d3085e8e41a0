package statistics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"

	"github.com/ridepark/vehicle-rental/internal/requests/repository"
)

type StatisticsError string

func (e StatisticsError) Error() string {
	return string(e)
}

const (
	ErrNoWriter StatisticsError = "statistics has no writer"
	ErrNoReader StatisticsError = "statistics has no reader"
)

// Request is the wire form of a recorded API request.
type Request struct {
	Method  string
	URL     string
	Body    string
	Headers string
}

type KafkaStatistics struct {
	reader  *kafka.Reader
	writer  *kafka.Writer
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *slog.Logger
	repo    *repository.SqlxRepository
}

func NewKafkaStatistics(reader *kafka.Reader, writer *kafka.Writer, logger *slog.Logger, repo *repository.SqlxRepository) *KafkaStatistics {
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name: "statistics-kafka",
	})

	return &KafkaStatistics{
		reader:  reader,
		writer:  writer,
		breaker: breaker,
		logger:  logger,
		repo:    repo,
	}
}

func (s *KafkaStatistics) HealthCheck(_ context.Context) error {
	return nil
}

// Push publishes one request record. The write goes through a circuit
// breaker so a dead broker stops costing request latency quickly.
func (s *KafkaStatistics) Push(ctx context.Context, req Request) error {
	if s.writer == nil {
		return ErrNoWriter
	}

	payload, err := kafka.Marshal(req)
	if err != nil {
		return err
	}

	uid := uuid.New().String()
	msg := kafka.Message{
		Key:   []byte(uid),
		Value: payload,
	}
	s.logger.Debug("write message to kafka...",
		slog.String("topic", s.writer.Topic),
		slog.String("key", uid),
	)

	_, err = s.breaker.Execute(func() (struct{}, error) {
		err := s.writer.WriteMessages(ctx, msg)
		if errors.Is(err, kafka.UnknownTopicOrPartition) {
			time.Sleep(5 * time.Second) // Wait for auto creating topic
			err = s.writer.WriteMessages(ctx, msg)
		}
		return struct{}{}, err
	})

	return err
}

// SaveRequest consumes one record from the topic and persists it. On a
// persistence error the reader offset is rewound so the record is not
// lost.
func (s *KafkaStatistics) SaveRequest(ctx context.Context) (err error) {
	if s.reader == nil {
		return ErrNoReader
	}

	msg, err := s.reader.ReadMessage(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			err = multierror.Append(err, s.reader.SetOffset(msg.Offset))
		}
	}()

	s.logger.Debug("read message from kafka",
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
		slog.String("key", string(msg.Key)),
	)

	var rawRequest Request
	err = kafka.Unmarshal(msg.Value, &rawRequest)
	if err != nil {
		return err
	}

	repoReq := repository.Request{
		Method:  rawRequest.Method,
		URL:     rawRequest.URL,
		Body:    rawRequest.Body,
		Headers: rawRequest.Headers,
	}

	return s.repo.SaveRequest(ctx, repoReq)
}
