package service

import "errors"

// Сентинельные ошибки сервисного слоя. Хендлеры маппят их на HTTP-статусы,
// наружу уходит только общий текст — детали остаются в логах.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("external service unavailable")
)
