// Package smtp entrega correos por SMTP con PLAIN auth (STARTTLS lo negocia net/smtp).
package smtp

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"pawfam-api/internal/ports/mail"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Sender struct {
	cfg  Config
	send sendFunc
	now  func() time.Time
}

func New(cfg Config) (*Sender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("smtp host required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if strings.TrimSpace(cfg.From) == "" {
		cfg.From = cfg.User
	}
	return &Sender{cfg: cfg, send: smtp.SendMail, now: time.Now}, nil
}

func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var a smtp.Auth
	if s.cfg.User != "" {
		a = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	return s.send(addr, a, s.cfg.From, []string{msg.To}, s.build(msg))
}

func (s *Sender) build(msg mail.Message) []byte {
	var b strings.Builder
	b.WriteString("From: PawFam <" + s.cfg.From + ">\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("Date: " + s.now().UTC().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTML != "" {
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		b.WriteString(msg.HTML)
	} else {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		b.WriteString(msg.Text)
	}
	return []byte(b.String())
}
