package events

import (
	"context"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	connection *amqp091.Connection
	queueName  string
	log        *zap.Logger
}

// NewRabbitMQPublisher declares the screening event queue once up front so
// publishes never race consumers on queue existence.
func NewRabbitMQPublisher(connection *amqp091.Connection, internalConfig *config.InternalConfig, log *zap.Logger) (contracts.EventPublisher, error) {
	queueName := internalConfig.RabbitMQ.ScreeningEventQueue

	channel, err := connection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	return &rabbitMQPublisher{
		connection: connection,
		queueName:  queueName,
		log:        log,
	}, nil
}

func (p *rabbitMQPublisher) PublishScreeningCompleted(ctx context.Context, event *contracts.ScreeningCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	defer channel.Close()

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Info("published screening completed event",
		zap.String("queue", p.queueName),
		zap.String("response_id", event.ResponseID),
	)
	return nil
}
