package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reach-workshop/backend/internal/queue/task"
	"github.com/reach-workshop/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type contactMessageProcessor struct {
	workers *worker.Workers
}

func NewContactMessageProcessor(workers *worker.Workers) *contactMessageProcessor {
	return &contactMessageProcessor{
		workers: workers,
	}
}

func (p *contactMessageProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.ContactMessage
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process contact message task json unmarshal failed: %w", err)
	}

	input := worker.ContactMessageInput{
		Name:    data.Name,
		Email:   data.Email,
		Message: data.Message,
	}

	if err = p.workers.Notifications.SendContactMessageEmail(ctx, input); err != nil {
		return fmt.Errorf("send contact message email failed: %w", err)
	}

	return nil
}
