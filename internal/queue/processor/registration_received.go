package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reach-workshop/backend/internal/queue/task"
	"github.com/reach-workshop/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type registrationReceivedProcessor struct {
	workers *worker.Workers
}

func NewRegistrationReceivedProcessor(workers *worker.Workers) *registrationReceivedProcessor {
	return &registrationReceivedProcessor{
		workers: workers,
	}
}

func (p *registrationReceivedProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.RegistrationReceived
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process registration received task json unmarshal failed: %w", err)
	}

	input := worker.RegistrationReceivedInput{
		RegistrationID: data.RegistrationID,
		FullName:       data.FullName,
		Email:          data.Email,
		Phone:          data.Phone,
		Age:            data.Age,
		Experience:     data.Experience,
		TransactionID:  data.TransactionID,
	}

	if err = p.workers.Notifications.SendRegistrationReceivedEmail(ctx, input); err != nil {
		return fmt.Errorf("send registration received email failed: %w", err)
	}

	return nil
}
