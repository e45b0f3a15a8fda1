package notifier

import "errors"

var (
	// ErrNoAddress у адресата нет адреса для выбранного канала
	ErrNoAddress = errors.New("notifier: recipient has no address for channel")

	// ErrSendFailed провайдер не принял сообщение
	ErrSendFailed = errors.New("notifier: send failed")
)
