package service

import (
	"MachCatalog/internal/mailer"
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// структурная проверка: local@domain.tld с буквенным суффиксом от 2 символов
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// ContactService валидирует форму контактов и отправляет письмо
// фиксированному получателю через почтовый транспорт.
type ContactService struct {
	mailer mailer.Mailer
	logger *zap.SugaredLogger
}

func NewContactService(m mailer.Mailer, logger *zap.SugaredLogger) *ContactService {
	return &ContactService{mailer: m, logger: logger}
}

// Submit проверяет поля и отправляет письмо. Ошибка транспорта наружу не
// раскрывается — вызывающий получает общий ErrUnavailable.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: email address is malformed", ErrValidation)
	}

	subject := fmt.Sprintf("New contact from %s (%s)", name, email)
	body := fmt.Sprintf("From: %s\nEmail: %s\n\nMessage:\n%s", name, email, message)

	if err := s.mailer.Send(ctx, subject, body); err != nil {
		s.logger.Errorw("failed to dispatch contact email", "error", err)
		return ErrUnavailable
	}
	return nil
}
