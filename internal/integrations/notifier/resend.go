package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendSender отправка уведомлений по email через Resend
type ResendSender struct {
	emails emailAPI
	from   string
	log    Logger
}

// NewResendSender создает отправителя с ключом API и адресом отправителя
func NewResendSender(apiKey, from string, log Logger) *ResendSender {
	return newResendSender(resend.NewClient(apiKey).Emails, from, log)
}

func newResendSender(emails emailAPI, from string, log Logger) *ResendSender {
	return &ResendSender{
		emails: emails,
		from:   from,
		log:    log,
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	to := strings.TrimSpace(msg.Recipient.Email)
	if to == "" {
		return fmt.Errorf("%w: email for %q", ErrNoAddress, msg.Recipient.Name)
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: msg.Title,
		Text:    msg.Body,
	}

	sent, err := s.emails.SendWithContext(ctx, params)
	if err != nil {
		s.log.Error("Resend: failed to send %q to %s: %v", msg.Title, to, err)
		return fmt.Errorf("%w: resend: %v", ErrSendFailed, err)
	}

	s.log.Info("Resend: sent %q to %s, message_id=%s", msg.Title, to, sent.Id)
	return nil
}
