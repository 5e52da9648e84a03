package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"shoaib/models"
)

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	return redis.NewIntResult(1, f.err)
}

var event = models.CheckoutEvent{
	SessionID: "s-1",
	Mode:      "quick",
	Lines:     2,
	Items:     3,
	Total:     decimal.NewFromInt(215000),
	CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
}

func TestRedisEmitterPublishesEnvelope(t *testing.T) {
	pub := &fakePublisher{}
	e := NewRedisEmitter(pub, "checkout-events", zaptest.NewLogger(t))

	require.NoError(t, e.Emit(context.Background(), EventCheckoutInitiated, event))
	assert.Equal(t, "checkout-events", pub.channel)

	var got struct {
		Event string               `json:"event"`
		Data  models.CheckoutEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(pub.payload, &got))
	assert.Equal(t, EventCheckoutInitiated, got.Event)
	assert.Equal(t, "s-1", got.Data.SessionID)
	assert.True(t, got.Data.Total.Equal(event.Total))
}

func TestRedisEmitterWrapsPublishError(t *testing.T) {
	boom := errors.New("connection refused")
	e := NewRedisEmitter(&fakePublisher{err: boom}, "checkout-events", zaptest.NewLogger(t))

	err := e.Emit(context.Background(), EventCheckoutInitiated, event)
	assert.ErrorIs(t, err, boom)
}

func TestLogEmitter(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := NewLogEmitter(zap.New(core))

	require.NoError(t, e.Emit(context.Background(), EventCheckoutInitiated, event))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, EventCheckoutInitiated, entry.Message)
	assert.Equal(t, "215000", entry.ContextMap()["total"])
}
