package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender отправка уведомлений по SMS через Twilio
type TwilioSender struct {
	api  messageAPI
	from string
	log  Logger
}

// NewTwilioSender создает отправителя с учетными данными аккаунта
func NewTwilioSender(accountSID, authToken, from string, log Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newTwilioSender(client.Api, from, log)
}

func newTwilioSender(api messageAPI, from string, log Logger) *TwilioSender {
	return &TwilioSender{
		api:  api,
		from: from,
		log:  log,
	}
}

func (s *TwilioSender) Send(ctx context.Context, msg Message) error {
	to := strings.TrimSpace(msg.Recipient.Phone)
	if to == "" {
		return fmt.Errorf("%w: phone for %q", ErrNoAddress, msg.Recipient.Name)
	}
	// REST клиент Twilio не принимает context
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(msg.Title + "\n" + msg.Body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		s.log.Error("Twilio: failed to send %q to %s: %v", msg.Title, to, err)
		return fmt.Errorf("%w: twilio: %v", ErrSendFailed, err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	s.log.Info("Twilio: sent %q to %s, sid=%s", msg.Title, to, sid)
	return nil
}
