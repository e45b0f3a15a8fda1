package notifier

import "context"

// NoopSender пишет уведомления в лог вместо отправки
type NoopSender struct {
	log Logger
}

func NewNoopSender(log Logger) *NoopSender {
	return &NoopSender{log: log}
}

func (s *NoopSender) Send(_ context.Context, msg Message) error {
	s.log.Info("Notification (noop) to %s: %s", msg.Recipient.Name, msg.Title)
	return nil
}
