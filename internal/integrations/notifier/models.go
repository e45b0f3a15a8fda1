package notifier

import "context"

// Recipient адресат уведомления
type Recipient struct {
	Name  string
	Email string
	Phone string
}

// Message уведомление для одного адресата
type Message struct {
	Recipient Recipient
	Title     string
	Body      string
}

// Sender канал доставки уведомлений
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
