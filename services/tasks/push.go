package tasks

import (
	"encoding/json"

	"storably/models"

	"github.com/hibiken/asynq"
)

const TypeSendPush = "notify:push"

// NewPushTask wraps a push payload in an asynq task.
func NewPushTask(payload models.PushPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendPush, b), nil
}
