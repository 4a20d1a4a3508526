package models

// PushPayload is the task payload for an asynchronous push notification.
type PushPayload struct {
	TenantID string            `json:"tenantId"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
}
