package worker

import (
	"context"
	"fmt"

	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/pkg/email"
	"github.com/reach-workshop/backend/pkg/logger"
)

type notificationSender struct {
	sender   email.Sender
	config   config.EmailConfig
	workshop config.WorkshopConfig
}

func newNotificationSender(
	sender email.Sender,
	config config.EmailConfig,
	workshop config.WorkshopConfig,
) *notificationSender {
	return &notificationSender{
		sender:   sender,
		config:   config,
		workshop: workshop,
	}
}

type registrationReceivedTemplateInput struct {
	RegistrationID string
	FullName       string
	Email          string
	Phone          string
	Age            int
	Experience     string
	TransactionID  string
	EventName      string
}

func (s *notificationSender) SendRegistrationReceivedEmail(ctx context.Context, input RegistrationReceivedInput) error {
	if !s.config.Enabled {
		logger.Debug("email notifications disabled, skipping registration email")
		return nil
	}

	subject := fmt.Sprintf("New registration: %s", input.FullName)
	templateInput := registrationReceivedTemplateInput{
		RegistrationID: input.RegistrationID,
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		Age:            input.Age,
		Experience:     input.Experience,
		TransactionID:  input.TransactionID,
		EventName:      s.workshop.EventName,
	}

	return s.sendToOrganizers(subject, s.config.Templates.RegistrationReceived, templateInput)
}

type contactMessageTemplateInput struct {
	Name      string
	Email     string
	Message   string
	EventName string
}

func (s *notificationSender) SendContactMessageEmail(ctx context.Context, input ContactMessageInput) error {
	if !s.config.Enabled {
		logger.Debug("email notifications disabled, skipping contact email")
		return nil
	}

	subject := fmt.Sprintf("Contact message from %s", input.Name)
	templateInput := contactMessageTemplateInput{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		EventName: s.workshop.EventName,
	}

	return s.sendToOrganizers(subject, s.config.Templates.ContactMessage, templateInput)
}

func (s *notificationSender) sendToOrganizers(subject, templateFile string, data interface{}) error {
	for _, to := range s.config.NotifyEmails {
		sendInput := email.SendEmailInput{Subject: subject, To: to}

		if err := sendInput.GenerateBodyFromHTML(templateFile, data); err != nil {
			return fmt.Errorf("generate email failed: %w", err)
		}

		if err := s.sender.Send(sendInput); err != nil {
			return fmt.Errorf("send email failed: %w", err)
		}
	}

	return nil
}
