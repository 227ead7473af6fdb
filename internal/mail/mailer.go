package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/vendormax/apiserver/config"
	"github.com/vendormax/apiserver/internal/notify"
	gomail "github.com/wneessen/go-mail"
)

const resetSubject = "Password Reset"

// Mailer delivers outbound email over SMTP.
type Mailer struct {
	client *gomail.Client
	from   string
}

// NewMailer constructs a Mailer from SMTP config.
func NewMailer(cfg config.SMTPConfig) (*Mailer, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

// SendPasswordReset delivers the reset link to the user's address.
func (m *Mailer) SendPasswordReset(ctx context.Context, email notify.ResetEmail) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(email.Email); err != nil {
		return err
	}
	msg.Subject(resetSubject)
	msg.SetBodyString(gomail.TypeTextHTML, resetBody(email.ResetLink))

	return m.client.DialAndSendWithContext(ctx, msg)
}

func resetBody(link string) string {
	return fmt.Sprintf(
		`<p>You requested a password reset. Click the link below to reset your password:</p>
<a href=%q>Reset Password</a>`,
		link,
	)
}
