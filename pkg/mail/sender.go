package mail

import (
	"errors"
	"io"

	"gopkg.in/mail.v2"
)

var ErrNoRecipients = errors.New("mail has no recipients")

type Attachment struct {
	Name    string
	Content io.Reader
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

type Sender interface {
	Send(msg Message) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type Config struct {
	Email    string
	Password string
	Host     string
	Port     int
}

type sender struct {
	from   string
	dialer Dialer
}

func (s *sender) Send(msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	for _, a := range msg.Attachments {
		if a.Content == nil || a.Name == "" {
			continue
		}
		content := a.Content
		m.Attach(a.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, content)
			return err
		}))
	}
	return s.dialer.DialAndSend(m)
}

func NewMailSender(cfg Config) Sender {
	return &sender{
		from:   cfg.Email,
		dialer: mail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password),
	}
}
