package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/config"
	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/events"
)

// NotificationService reacts to dashboard events that need someone's attention.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInsightAdded, n.handleInsightAdded)
	n.dispatcher.Subscribe(events.EventStaffRemoved, n.handleStaffRemoved)
	n.dispatcher.Subscribe(events.EventChatCleared, n.handleChatCleared)
}

func (n *NotificationService) handleInsightAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InsightAddedPayload)
	if !ok {
		return nil
	}
	if payload.Insight.Priority != domain.PriorityHigh {
		n.logger.Debug("InsightAdded", zap.String("insight_id", event.EntityID))
		return nil
	}
	n.logger.Warn("high priority insight",
		zap.String("insight_id", payload.Insight.ID),
		zap.String("type", string(payload.Insight.Type)),
		zap.String("title", payload.Insight.Title))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStaffRemoved(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.StaffRemovedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("StaffRemoved",
		zap.String("staff_id", payload.StaffID),
		zap.Bool("selection_cleared", payload.SelectionCleared))
	if len(payload.DanglingShiftIDs) > 0 {
		n.logger.Warn("shifts reference removed staff",
			zap.String("staff_id", payload.StaffID),
			zap.Strings("shift_ids", payload.DanglingShiftIDs))
		n.sendWebhookNotificationStub(ctx, event)
	}
	return nil
}

func (n *NotificationService) handleChatCleared(_ context.Context, event events.Event) error {
	n.logger.Info("ChatCleared", zap.String("event_id", event.ID))
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
