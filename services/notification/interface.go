package notification

import (
	"context"

	"storably/models"
)

// NotificationService sends FCM pushes to tenant devices and enqueues
// them for asynchronous delivery.
type NotificationService interface {
	// Enqueue schedules a push for background delivery.
	Enqueue(ctx context.Context, payload models.PushPayload) error
	// SendPush delivers a push immediately. Used by the worker.
	SendPush(ctx context.Context, payload models.PushPayload) error
	// RegisterDeviceToken stores the FCM token for a tenant.
	RegisterDeviceToken(ctx context.Context, tenantID, token string) error
}
