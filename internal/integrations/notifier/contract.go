package notifier

import (
	"context"

	"github.com/resend/resend-go/v2"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// emailAPI часть resend.EmailsSvc, которой пользуется ResendSender
type emailAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// messageAPI часть twilio ApiService, которой пользуется TwilioSender
type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}
