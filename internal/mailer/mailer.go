package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"salesreport/internal/logger"
	"salesreport/internal/models"
)

// ErrDelivery indicates the report email could not be sent.
var ErrDelivery = errors.New("report delivery failed")

// plainFallback is the text/plain part shown by clients without HTML support
const plainFallback = "Your email client does not support HTML."

// Mailer delivers assembled report bundles over SMTP
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       []string
	log      *logger.Logger
}

// NewMailer creates a mailer for the given SMTP endpoint and recipients
func NewMailer(host string, port int, username, password, from string, to []string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
		log:      logger.WithComponent("MAILER"),
	}
}

// Send delivers the bundle as a multipart email: plain fallback, HTML body,
// and every attachment in bundle order.
func (m *Mailer) Send(ctx context.Context, bundle *models.ArtifactBundle) error {
	if m.host == "" || m.username == "" || m.password == "" {
		return fmt.Errorf("%w: smtp credentials are not configured", ErrDelivery)
	}
	if len(m.to) == 0 {
		return fmt.Errorf("%w: no recipients configured", ErrDelivery)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("%w: invalid sender %q: %v", ErrDelivery, m.from, err)
	}
	if err := msg.To(m.to...); err != nil {
		return fmt.Errorf("%w: invalid recipients: %v", ErrDelivery, err)
	}
	msg.Subject(bundle.Subject)
	msg.SetBodyString(mail.TypeTextPlain, plainFallback)
	msg.AddAlternativeString(mail.TypeTextHTML, bundle.HTMLBody)

	for _, att := range bundle.Attachments {
		err := msg.AttachReader(att.Filename, bytes.NewReader(att.Data),
			mail.WithFileContentType(mail.ContentType(att.MIMEType)))
		if err != nil {
			return fmt.Errorf("%w: attaching %s: %v", ErrDelivery, att.Filename, err)
		}
	}

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("%w: creating smtp client: %v", ErrDelivery, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	m.log.Info("Report email sent", map[string]interface{}{
		"subject":     bundle.Subject,
		"recipients":  len(m.to),
		"attachments": len(bundle.Attachments),
	})
	return nil
}
