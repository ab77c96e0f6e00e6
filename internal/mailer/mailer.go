package mailer

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

// Mailer delivers contact-form notifications to the synagogue inbox over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New creates a mailer. from is the authenticated SMTP account, to is the
// synagogue address that receives contact notifications.
func New(host string, port int, user, pass, to string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		to:     to,
	}
}

// SendContactNotification emails a contact-form submission, RTL formatted.
func (m *Mailer) SendContactNotification(name, email, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("פנייה חדשה מ-%s", name))

	text := fmt.Sprintf(`שם: %s
אימייל: %s

הודעה:
%s

נשלח באמצעות טופס יצירת קשר באתר בית הכנסת
`, name, email, message)
	msg.SetBody("text/plain", text)

	htmlBody := fmt.Sprintf(`<div dir="rtl">
  <h2>פנייה חדשה מאתר בית הכנסת</h2>
  <p><strong>שם:</strong> %s</p>
  <p><strong>אימייל:</strong> %s</p>
  <h3>הודעה:</h3>
  <p>%s</p>
  <hr>
  <p>נשלח באמצעות טופס יצירת קשר באתר בית הכנסת</p>
</div>`,
		html.EscapeString(name),
		html.EscapeString(email),
		strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"))
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}
