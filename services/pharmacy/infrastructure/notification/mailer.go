// Package notification implements the receipt Notifier port over SMTP,
// attaching the bill as a rendered PDF.
package notification

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/ghuser/rxledger/pkg/config"
	"github.com/ghuser/rxledger/services/pharmacy/domain/notifications"
)

// Mailer sends billing receipts by email. It implements
// notifications.Notifier; a send error aborts the caller's billing workflow,
// so no retries happen here.
type Mailer struct {
	client *mail.Client
	from   string
}

// NewMailer builds a Mailer from SMTP config. The connection is established
// lazily on first send.
func NewMailer(cfg *config.Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Mailer{client: client, from: cfg.SMTPFrom}, nil
}

// SendReceipt renders the bill PDF and emails it to the customer. Returns an
// error when rendering, addressing, or the SMTP handoff fails — the caller
// treats any failure as "receipt not delivered".
func (m *Mailer) SendReceipt(ctx context.Context, r notifications.Receipt) error {
	pdf, err := renderReceiptPDF(r)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(r.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject("Your Pharmacy Bill - " + r.MedicineName)
	msg.SetBodyString(mail.TypeTextPlain,
		"Dear Customer,\n\nPlease find attached the bill for your recent purchase of "+
			r.MedicineName+".\n\nThank you,\nPharmacy Management Team")

	if err := msg.AttachReader("Bill_"+r.MedicineName+".pdf", bytes.NewReader(pdf)); err != nil {
		return fmt.Errorf("attach receipt: %w", err)
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send receipt email: %w", err)
	}
	return nil
}
