package mailer

import (
	"StoreBackend/config"
	"fmt"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"log"
)

// Sender delivers the account-lifecycle mails. Handlers depend on this
// interface so tests can substitute a recorder.
type Sender interface {
	SendVerificationMail(toName, toEmail, link string) error
	SendResetMail(toName, toEmail, link string) error
}

// Mailer sends through sendgrid. Delivery runs in a goroutine so HTTP
// handlers never wait on the mail provider.
type Mailer struct {
	apiKey      string
	senderName  string
	senderEmail string
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		apiKey:      cfg.SendgridAPIKey,
		senderName:  cfg.SenderName,
		senderEmail: cfg.SenderEmail,
	}
}

func (m *Mailer) SendVerificationMail(toName, toEmail, link string) error {
	subject := "Verify your email address"
	plain := fmt.Sprintf("Click the link to verify your email address: %s", link)
	html := fmt.Sprintf(`<p>Click the link to verify your email address:</p><p><a href="%s">Verify email</a></p>`, link)
	m.dispatch(toName, toEmail, subject, plain, html)
	return nil
}

func (m *Mailer) SendResetMail(toName, toEmail, link string) error {
	subject := "Reset your password"
	plain := fmt.Sprintf("Click the link to reset your password: %s", link)
	html := fmt.Sprintf(`<p>Click the link to reset your password:</p><p><a href="%s">Reset password</a></p>`, link)
	m.dispatch(toName, toEmail, subject, plain, html)
	return nil
}

func (m *Mailer) dispatch(toName, toEmail, subject, plain, html string) {
	from := mail.NewEmail(m.senderName, m.senderEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	go func() {
		client := sendgrid.NewSendClient(m.apiKey)
		response, err := client.Send(message)
		if err != nil {
			log.Printf("failed to send %q mail to %s: %v\n", subject, toEmail, err)
			return
		}
		if response.StatusCode >= 400 {
			log.Printf("sendgrid rejected %q mail to %s: status %d\n", subject, toEmail, response.StatusCode)
		}
	}()
}
