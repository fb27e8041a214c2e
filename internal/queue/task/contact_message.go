package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	ContactMessageTaskName  = "contactMessageTask"
	ContactMessageQueueName = "notificationQueue"
)

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func NewContactMessageTask(data ContactMessage) (*asynq.Task, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		ContactMessageTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(ContactMessageQueueName),
	), nil
}
