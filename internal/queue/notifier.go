package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/internal/queue/client"
	"github.com/reach-workshop/backend/internal/queue/task"
)

// Notifier enqueues organizer notifications onto asynq instead of sending
// them inline, so a slow SMTP server never delays a request.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) RegistrationReceived(ctx context.Context, registration domain.Registration) error {
	t, err := task.NewRegistrationReceivedTask(task.RegistrationReceived{
		RegistrationID: registration.ID.String(),
		FullName:       registration.FullName,
		Email:          registration.Email,
		Phone:          registration.Phone,
		Age:            registration.Age,
		Experience:     string(registration.Experience),
		TransactionID:  registration.TransactionID,
	})
	if err != nil {
		return fmt.Errorf("build registration received task: %w", err)
	}

	return n.enqueue(ctx, t)
}

func (n *Notifier) ContactMessage(ctx context.Context, name, email, message string) error {
	t, err := task.NewContactMessageTask(task.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("build contact message task: %w", err)
	}

	return n.enqueue(ctx, t)
}

func (n *Notifier) enqueue(ctx context.Context, t *asynq.Task) error {
	c := client.GetClient(ctx)
	if c == nil {
		return errors.New("asynq client is not configured")
	}

	if _, err := c.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue task failed: %w", err)
	}

	return nil
}
