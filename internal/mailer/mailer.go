package mailer

import "go.uber.org/zap"

// Mailer é a fronteira com o serviço de envio de e-mail.
type Mailer interface {
	SendResetCode(to string, code string) error
}

// LogMailer registra o envio em vez de falar com um provedor real.
// Usado em desenvolvimento e nos ambientes sem SMTP configurado.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendResetCode(to string, code string) error {
	m.log.Info("password reset code issued", zap.String("to", to))
	m.log.Debug("password reset code", zap.String("code", code))
	return nil
}
