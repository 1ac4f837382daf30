package client

import (
	"errors"
)

// Типизированные ошибки ядра: вызывающая сторона различает их через
// errors.Is и показывает пользователю осмысленное сообщение.
var (
	// ErrStorage — отказали оба локальных бэкенда, изменения не сохранены.
	ErrStorage = errors.New("local storage unavailable")

	// ErrNetwork — сервер или API распознавания недоступны.
	ErrNetwork = errors.New("network error")

	// ErrAuth — неверные или отсутствующие учетные данные.
	ErrAuth = errors.New("authentication failed")

	// ErrQuota — внешний API исчерпал лимит запросов.
	ErrQuota = errors.New("quota exceeded")

	// ErrParse — внешний API вернул данные, которые не удалось разобрать.
	ErrParse = errors.New("malformed response")

	// ErrSyncInProgress — повторный вызов sync при незавершенном предыдущем.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrNotAuthenticated — операция требует входа в аккаунт.
	ErrNotAuthenticated = errors.New("not authenticated")
)
