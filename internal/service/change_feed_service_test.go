package service

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/michaeljohnaustria/my-garden/internal/domain"
	"github.com/michaeljohnaustria/my-garden/internal/events"
	"github.com/michaeljohnaustria/my-garden/internal/observability"
)

func TestChangeFeed_PublishesToRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	sub := client.Subscribe(ctx, "garden.events")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewChangeFeedService(dispatcher, zap.NewNop(), metrics, client, "garden.events", time.Second)
	svc.RegisterHandlers()

	ev := events.NewEvent(events.EventResourceCreated, domain.ResourceVegetables, 12, "mich", nil)
	require.NoError(t, dispatcher.Publish(ctx, ev))

	select {
	case msg := <-sub.Channel():
		var got events.Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, ev.ID, got.ID)
		assert.Equal(t, events.EventResourceCreated, got.Type)
		assert.Equal(t, domain.ResourceVegetables, got.Resource)
		assert.Equal(t, int64(12), got.ResourceID)
		assert.Equal(t, "mich", got.Actor)
	case <-time.After(2 * time.Second):
		t.Fatal("no message on change feed channel")
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ResourceChanges.WithLabelValues("vegetables", "resource_created")))
}

func TestChangeFeed_WithoutRedis(t *testing.T) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	dispatcher := events.NewInMemoryDispatcher()
	NewChangeFeedService(dispatcher, zap.NewNop(), metrics, nil, "garden.events", 0).RegisterHandlers()

	ev := events.NewEvent(events.EventResourceDeleted, domain.ResourcePests, 4, "mich", nil)
	require.NoError(t, dispatcher.Publish(context.Background(), ev))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ResourceChanges.WithLabelValues("pests", "resource_deleted")))
}

func TestChangeFeed_RedisDownIsReported(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	dispatcher := events.NewInMemoryDispatcher()
	NewChangeFeedService(dispatcher, zap.NewNop(), nil, client, "garden.events", time.Second).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.NewEvent(events.EventResourceUpdated, domain.ResourceFacts, 1, "", nil))
	assert.Error(t, err)
}

func TestChangeFeed_UnresponsiveRedisIsBounded(t *testing.T) {
	// Accepts connections and never answers.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		var held []net.Conn
		defer func() {
			for _, conn := range held {
				_ = conn.Close()
			}
		}()
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			held = append(held, conn)
		}
	}()

	client := redis.NewClient(&redis.Options{
		Addr:                  ln.Addr().String(),
		MaxRetries:            -1,
		ContextTimeoutEnabled: true,
	})
	t.Cleanup(func() { _ = client.Close() })

	dispatcher := events.NewInMemoryDispatcher()
	NewChangeFeedService(dispatcher, zap.NewNop(), nil, client, "garden.events", 150*time.Millisecond).RegisterHandlers()

	start := time.Now()
	err = dispatcher.Publish(context.Background(), events.NewEvent(events.EventResourceCreated, domain.ResourceVegetables, 1, "", nil))
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestChangeFeed_PublishSurvivesCancelledRequest(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	dispatcher := events.NewInMemoryDispatcher()
	NewChangeFeedService(dispatcher, zap.NewNop(), nil, client, "garden.events", time.Second).RegisterHandlers()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, dispatcher.Publish(ctx, events.NewEvent(events.EventResourceDeleted, domain.ResourceSoilTypes, 2, "", nil)))
}
