package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shoaib/models"
)

// EventCheckoutInitiated is emitted when a checkout link is handed out.
const EventCheckoutInitiated = "checkout.initiated"

// Emitter publishes storefront events. Delivery is best effort.
type Emitter interface {
	Emit(ctx context.Context, eventName string, event models.CheckoutEvent) error
}

// Publisher is the slice of the redis client the emitter needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type envelope struct {
	Event string               `json:"event"`
	Data  models.CheckoutEvent `json:"data"`
}

// RedisEmitter publishes events to a Redis Pub/Sub channel.
type RedisEmitter struct {
	conn    Publisher
	channel string
	timeout time.Duration
	log     *zap.Logger
}

func NewRedisEmitter(conn Publisher, channel string, log *zap.Logger) *RedisEmitter {
	return &RedisEmitter{conn: conn, channel: channel, timeout: 2 * time.Second, log: log}
}

func (e *RedisEmitter) Emit(ctx context.Context, eventName string, event models.CheckoutEvent) error {
	data, err := json.Marshal(envelope{Event: eventName, Data: event})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventName, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	if err := e.conn.Publish(ctx, e.channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", eventName, e.channel, err)
	}

	e.log.Debug("event published", zap.String("event", eventName), zap.String("channel", e.channel))
	return nil
}

// LogEmitter only logs. It is used when no Redis address is configured.
type LogEmitter struct {
	log *zap.Logger
}

func NewLogEmitter(log *zap.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

func (e *LogEmitter) Emit(_ context.Context, eventName string, event models.CheckoutEvent) error {
	e.log.Info(eventName,
		zap.String("session_id", event.SessionID),
		zap.String("mode", event.Mode),
		zap.Int("lines", event.Lines),
		zap.Int("items", event.Items),
		zap.String("total", event.Total.String()))
	return nil
}
