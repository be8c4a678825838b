package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/michaeljohnaustria/my-garden/internal/events"
	"github.com/michaeljohnaustria/my-garden/internal/observability"
)

// ChangeFeedService fans resource events out to logs, metrics and an optional
// Redis pub/sub channel.
type ChangeFeedService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	redis      *redis.Client
	channel    string
	timeout    time.Duration
}

// NewChangeFeedService creates the service. A nil redis client disables publishing.
// Each publish runs under its own deadline of timeout, detached from request cancellation.
func NewChangeFeedService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics, client *redis.Client, channel string, timeout time.Duration) *ChangeFeedService {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &ChangeFeedService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		redis:      client,
		channel:    channel,
		timeout:    timeout,
	}
}

const defaultPublishTimeout = 500 * time.Millisecond

// RegisterHandlers subscribes to every resource event.
func (s *ChangeFeedService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.SubscribeAll(s.handleResourceChange)
}

func (s *ChangeFeedService) handleResourceChange(ctx context.Context, event events.Event) error {
	s.logger.Info("ResourceChanged",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("resource", string(event.Resource)),
		zap.Int64("resource_id", event.ResourceID),
		zap.String("actor", event.Actor))
	s.metrics.RecordChange(string(event.Resource), string(event.Type))

	return s.publishToRedis(ctx, event)
}

func (s *ChangeFeedService) publishToRedis(ctx context.Context, event events.Event) error {
	if s.redis == nil || s.channel == "" {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	// The row is already committed; a lost feed message is logged, not surfaced.
	if err := s.redis.Publish(ctx, s.channel, body).Err(); err != nil {
		s.logger.Warn("change feed publish failed",
			zap.String("channel", s.channel),
			zap.String("event_id", event.ID),
			zap.Error(err))
		return err
	}
	return nil
}
