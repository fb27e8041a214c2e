package worker

import (
	"context"

	"github.com/reach-workshop/backend/internal/config"
	emailProvider "github.com/reach-workshop/backend/pkg/email"
)

type Workers struct {
	Notifications NotificationSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type RegistrationReceivedInput struct {
	RegistrationID string
	FullName       string
	Email          string
	Phone          string
	Age            int
	Experience     string
	TransactionID  string
}

type ContactMessageInput struct {
	Name    string
	Email   string
	Message string
}

type NotificationSender interface {
	SendRegistrationReceivedEmail(ctx context.Context, input RegistrationReceivedInput) error
	SendContactMessageEmail(ctx context.Context, input ContactMessageInput) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		Notifications: newNotificationSender(deps.EmailProvider, deps.Config.Email, deps.Config.Workshop),
	}
}
