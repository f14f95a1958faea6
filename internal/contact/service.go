// Package contact relays contact form submissions over SMTP. Each valid
// submission produces exactly two emails: a notification to the business
// inbox (with any attachments) and an auto-reply to the sender. Nothing is
// persisted and nothing is retried.
package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/richxcame/agency-site/pkg/config"
	"github.com/richxcame/agency-site/pkg/logger"
	"github.com/richxcame/agency-site/pkg/validation"
)

// Service validates submissions and relays them as email.
type Service struct {
	mailer Mailer
	cfg    config.SMTPConfig
}

// NewService creates a contact service
func NewService(mailer Mailer, cfg config.SMTPConfig) *Service {
	return &Service{mailer: mailer, cfg: cfg}
}

// Submit validates the submission and sends the notification and auto-reply
// emails. Validation failures return before any email is sent. A send
// failure of either email is returned as-is; the caller decides the status.
func (s *Service) Submit(ctx context.Context, sub *Submission, attachments []Attachment) error {
	if err := validation.ValidateStruct(sub); err != nil {
		return err
	}

	notificationBody, err := renderNotification(sub)
	if err != nil {
		return err
	}
	autoReplyBody, err := renderAutoReply(sub)
	if err != nil {
		return err
	}

	log := logger.WithContext(ctx)

	notification := Email{
		To:          s.cfg.Inbox,
		ReplyTo:     sub.Email,
		Subject:     fmt.Sprintf("New inquiry from %s", sub.Name),
		HTMLBody:    notificationBody,
		Attachments: attachments,
	}
	if err := s.mailer.Send(ctx, notification); err != nil {
		log.Error("Failed to send contact notification",
			zap.String("sender", sub.Email),
			zap.Error(err))
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	autoReply := Email{
		To:       sub.Email,
		Subject:  "We received your message",
		HTMLBody: autoReplyBody,
	}
	if err := s.mailer.Send(ctx, autoReply); err != nil {
		log.Error("Failed to send contact auto-reply",
			zap.String("recipient", sub.Email),
			zap.Error(err))
		return fmt.Errorf("failed to deliver auto-reply: %w", err)
	}

	log.Info("Contact submission relayed",
		zap.String("sender", sub.Email),
		zap.Int("attachments", len(attachments)))
	return nil
}
