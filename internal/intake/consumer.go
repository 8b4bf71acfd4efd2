package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"demo/kitchenpos/internal/cache"
	"demo/kitchenpos/internal/dto"
	"demo/kitchenpos/internal/logging"
	"demo/kitchenpos/internal/model"
	"demo/kitchenpos/internal/validate"
)

// Reader is the part of *kafka.Reader the consumer needs.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type OrderCreator interface {
	Create(ctx context.Context, req dto.OrderRequest) (model.Order, error)
}

// Consumer turns order requests read from Kafka into orders.
type Consumer struct {
	reader     Reader
	orders     OrderCreator
	cache      *cache.Orders
	log        *slog.Logger
	RetryDelay time.Duration
}

func NewConsumer(r Reader, orders OrderCreator, c *cache.Orders, log *slog.Logger) *Consumer {
	return &Consumer{reader: r, orders: orders, cache: c, log: log, RetryDelay: 500 * time.Millisecond}
}

// Run consumes until ctx is done. Rejected requests are committed; a storage failure
// blocks the partition and the same message is retried every RetryDelay.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			c.log.Error("kafka fetch", slog.String("action", "intake_fetch"), slog.Any("err", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.RetryDelay):
			}
			continue
		}

		// a later commit would cover this offset too, so a failed message is retried in place
		for !c.handle(ctx, m) {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.RetryDelay):
			}
		}
		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.log.Error("kafka commit", slog.String("action", "intake_commit"), slog.Int64("offset", m.Offset), slog.Any("err", err))
		}
	}
}

// handle reports whether m is done with and may be committed.
func (c *Consumer) handle(ctx context.Context, m kafka.Message) bool {
	ctx = logging.WithRequestID(ctx, fmt.Sprintf("kafka-%d-%d", m.Partition, m.Offset))
	log := logging.FromContext(ctx, c.log).With(slog.String("action", "intake_order"), slog.Int64("offset", m.Offset))

	var req dto.OrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		log.Warn("invalid message", slog.Any("err", err))
		return true
	}
	if err := validate.OrderRequest(req); err != nil {
		log.Warn("order request rejected", slog.Any("err", err))
		return true
	}

	o, err := c.orders.Create(ctx, req)
	switch {
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrNotFound):
		log.Warn("order request rejected", slog.Any("err", err))
		return true
	case err != nil:
		log.Error("order create failed", slog.Any("err", err))
		return false
	}
	c.cache.Set(o)
	return true
}
