package pkg

import (
	"crypto/tls"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether SMTP is configured at all; notification mail is
// optional and skipped when it is not.
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

func PrayerRequestHTML(name, email, request string) string {
	from := html.EscapeString(name)
	if email != "" {
		from = fmt.Sprintf("%s (%s)", from, html.EscapeString(email))
	}
	return fmt.Sprintf(`<p>A new prayer request has arrived from <b>%s</b>:</p><blockquote>%s</blockquote>`,
		from, html.EscapeString(request))
}
