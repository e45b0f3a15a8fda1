package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrClientInUse возвращается при удалении клиента, у которого есть записи
	ErrClientInUse = errors.New("client.repository: client has appointments")

	ErrBuildQuery = errors.New("client.repository: failed to build query")
	ErrExecQuery  = errors.New("client.repository: failed to execute query")
	ErrScanRow    = errors.New("client.repository: failed to scan row")
)
