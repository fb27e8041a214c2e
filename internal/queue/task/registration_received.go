package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	RegistrationReceivedTaskName  = "registrationReceivedTask"
	RegistrationReceivedQueueName = "notificationQueue"
)

type RegistrationReceived struct {
	RegistrationID string `json:"registration_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Age            int    `json:"age"`
	Experience     string `json:"experience"`
	TransactionID  string `json:"transaction_id"`
}

func NewRegistrationReceivedTask(data RegistrationReceived) (*asynq.Task, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		RegistrationReceivedTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(RegistrationReceivedQueueName),
	), nil
}
