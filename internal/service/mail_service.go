package service

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"net/textproto"
	"sync"

	"ime-admin-service/config"
	"ime-admin-service/pkg/apperr"

	"github.com/sirupsen/logrus"
)

type MailService interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

const mailMessageFormat = "To: %s\r\n" +
	"Subject: %s\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
	"\r\n%s\r\n"

// smtpMailService keeps a lazily-built auth handle guarded by a mutex.
// On an authentication failure the handle is invalidated and the send is
// retried exactly once with a fresh one; worst case is a single extra
// reconnect.
type smtpMailService struct {
	cfg config.SMTPConfig
	log *logrus.Logger

	mu   sync.Mutex
	auth smtp.Auth
}

func NewSMTPMailService(cfg config.SMTPConfig, log *logrus.Logger) MailService {
	return &smtpMailService{
		cfg: cfg,
		log: log,
	}
}

func (s *smtpMailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	err := s.send(to, subject, htmlBody)
	if err != nil && isSMTPAuthError(err) {
		s.log.Warnf("SMTP auth failed, rebuilding client and retrying once: %+v", err)
		s.invalidate()
		err = s.send(to, subject, htmlBody)
	}
	if err != nil {
		return apperr.Dependency("failed to send email", err)
	}
	return nil
}

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	msg := []byte(fmt.Sprintf(mailMessageFormat, to, subject, htmlBody))
	return smtp.SendMail(addr, s.client(), s.cfg.From, []string{to}, msg)
}

func (s *smtpMailService) client() smtp.Auth {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auth == nil {
		s.auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return s.auth
}

func (s *smtpMailService) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = nil
}

// isSMTPAuthError matches the SMTP reply codes for failed authentication
// (530 auth required, 535 auth credentials invalid).
func isSMTPAuthError(err error) bool {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		return protoErr.Code == 530 || protoErr.Code == 535
	}
	return false
}
