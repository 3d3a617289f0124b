package reconciliation

import (
	"abdm-link-service/internal/app/contracts"
	"abdm-link-service/internal/app/models"
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/exceptions"
	"abdm-link-service/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const publishConfirmTimeout = 5 * time.Second

// confirmation is satisfied by *amqp.DeferredConfirmation.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publisher interface {
	publish(ctx context.Context, queueName string, msg amqp.Publishing) (confirmation, error)
	Close() error
}

type channelPublisher struct {
	ch *amqp.Channel
}

func (p *channelPublisher) publish(ctx context.Context, queueName string, msg amqp.Publishing) (confirmation, error) {
	deferred, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, "", queueName, false, false, msg)
	if err != nil {
		return nil, err
	}
	if deferred == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return deferred, nil
}

func (p *channelPublisher) Close() error {
	return p.ch.Close()
}

// Service publishes failed link transactions to a durable queue so operators
// can reconcile care contexts left behind on the exchange.
type Service struct {
	pub            publisher
	log            *zap.Logger
	queueName      string
	confirmTimeout time.Duration
}

// NewService opens a channel, declares the durable queue and enables
// publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.ReconciliationPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newService(&channelPublisher{ch: ch}, log, queueName, publishConfirmTimeout), nil
}

func newService(pub publisher, log *zap.Logger, queueName string, confirmTimeout time.Duration) *Service {
	return &Service{
		pub:            pub,
		log:            log,
		queueName:      queueName,
		confirmTimeout: confirmTimeout,
	}
}

// PublishFailedLink waits for the broker to confirm this message. A
// confirmation that arrives after the timeout is discarded with its message.
func (s *Service) PublishFailedLink(ctx context.Context, event *models.ReconciliationEvent) error {
	requestID := utils.RequestIDFromContext(ctx)
	s.log.Info("ReconciliationQueue.PublishFailedLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, event.TransactionID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.TransactionID,
		Timestamp:    event.OccurredAt,
		Type:         event.Event,
	}

	confirmed, err := s.pub.publish(ctx, s.queueName, msg)
	if err != nil {
		s.log.Error("ReconciliationQueue.PublishFailedLink error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	acked, err := confirmed.WaitContext(ctx)
	if err != nil {
		s.log.Error("ReconciliationQueue.PublishFailedLink error waiting for confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errors.New("message not confirmed"), s.queueName)
	}

	s.log.Info("ReconciliationQueue.PublishFailedLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, event.TransactionID),
	)
	return nil
}

func (s *Service) Close() error {
	return s.pub.Close()
}
