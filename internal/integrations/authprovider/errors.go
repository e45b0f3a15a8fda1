package authprovider

import "errors"

var (
	// ErrMissingToken запрос без access token'а
	ErrMissingToken = errors.New("authprovider: missing token")

	// ErrInvalidToken токен не прошел проверку подписи, срока действия или аудитории
	ErrInvalidToken = errors.New("authprovider: invalid token")

	// ErrInvalidSubject в токене нет корректного идентификатора пользователя
	ErrInvalidSubject = errors.New("authprovider: invalid subject")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("authprovider client: invalid response")
)
