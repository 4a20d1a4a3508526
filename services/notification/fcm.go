package notification

import (
	"context"
	"fmt"

	"storably/models"
	"storably/services/tasks"
	"storably/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation: device
// tokens live in the cache, delivery happens over FCM, and enqueueing
// goes through asynq.
type DefaultNotificationService struct {
	Client *asynq.Client
	FCM    *messaging.Client
	Cache  utils.Cache
}

func NewDefaultNotificationService(client *asynq.Client, fcm *messaging.Client, cache utils.Cache) *DefaultNotificationService {
	return &DefaultNotificationService{Client: client, FCM: fcm, Cache: cache}
}

func (s *DefaultNotificationService) Enqueue(ctx context.Context, payload models.PushPayload) error {
	logger := utils.GetLogger()

	task, err := tasks.NewPushTask(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue push task: %w", err)
	}
	logger.Debug("push enqueued", zap.String("tenantID", payload.TenantID), zap.String("title", payload.Title))
	return nil
}

func (s *DefaultNotificationService) SendPush(ctx context.Context, payload models.PushPayload) error {
	logger := utils.GetLogger()

	token, err := s.Cache.Get(ctx, utils.DeviceTokenCachePrefix+payload.TenantID)
	if err != nil {
		logger.Warn("no device token registered, dropping push",
			zap.String("tenantID", payload.TenantID))
		return nil
	}

	if s.FCM == nil {
		logger.Warn("FCM client not configured, dropping push",
			zap.String("tenantID", payload.TenantID))
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) RegisterDeviceToken(ctx context.Context, tenantID, token string) error {
	return s.Cache.Set(ctx, utils.DeviceTokenCachePrefix+tenantID, token, 0)
}
