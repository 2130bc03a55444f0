package app

import (
	"context"
	"errors"

	"go.uber.org/dig"

	"bloodlink/internal/apperr"
	"bloodlink/internal/config"
	"bloodlink/internal/logx"
	"bloodlink/internal/repository"
	"bloodlink/internal/service/alerting"
	"bloodlink/internal/service/urgent"
	"bloodlink/internal/transport/kafka"
)

type urgentHandler interface {
	Handle(ctx context.Context, e urgent.Event) error
}

// makeUrgentKafka adapts the urgent processor to the consumer loop.
// Validation failures are permanent: redelivering a malformed event will
// never make it valid.
func makeUrgentKafka(p urgentHandler) kafka.HandleFunc {
	return func(ctx context.Context, event urgent.Event) error {
		err := p.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.Invalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}

func newUrgentProcessor(recipients *repository.RecipientRepo, alerts *alerting.Service, logger logx.Logger) *urgent.Processor {
	return urgent.NewProcessor(recipients, alerts, logger)
}

func newUrgentConsumer(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
	return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger, h)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		newUrgentProcessor,
		func(p *urgent.Processor) kafka.HandleFunc { return makeUrgentKafka(p) },
		newUrgentConsumer,
	)
}
