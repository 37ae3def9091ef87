// Package notify implementa el puerto Notifier sobre SMTP.
package notify

import (
	"gopkg.in/gomail.v2"

	"github.com/eustachekamala/virunga-inventory/internal/application/ports"
	"github.com/eustachekamala/virunga-inventory/pkg/config"
	"github.com/eustachekamala/virunga-inventory/pkg/logger"
)

var _ ports.Notifier = (*MailNotifier)(nil)

// MailNotifier envía las alertas de stock por correo. Entrega best-effort:
// una falla de SMTP se registra y se descarta, nunca se propaga.
type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// NewMailNotifier construye el notificador con la configuración SMTP.
func NewMailNotifier(cfg config.MailConfig, log *logger.Logger) *MailNotifier {
	return &MailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

func (n *MailNotifier) Send(to, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("falla enviando correo")
		return
	}
	n.log.Info().Str("to", to).Str("subject", subject).Msg("correo enviado")
}
