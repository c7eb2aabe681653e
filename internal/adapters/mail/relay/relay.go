// Package relay entrega correos vía un servicio HTTP (API tipo SendGrid/Mailgun propia).
package relay

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pawfam-api/internal/platform/httpclient"
	"pawfam-api/internal/ports/mail"
)

type Sender struct {
	c    *httpclient.Client
	url  string
	from string
}

type payload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// New apunta al endpoint de envío (URL absoluta).
func New(c *httpclient.Client, url, from string) *Sender {
	return &Sender{c: c, url: strings.TrimSpace(url), from: from}
}

// NewFromURL arma el cliente; token va como Bearer si no está vacío.
func NewFromURL(url, token, from string) (*Sender, error) {
	opts := []httpclient.Option{httpclient.WithRetry(3, 250*time.Millisecond)}
	if strings.TrimSpace(token) != "" {
		opts = append(opts, httpclient.WithHeader("Authorization", "Bearer "+token))
	}
	c, err := httpclient.New("", 0, opts...)
	if err != nil {
		return nil, err
	}
	return New(c, url, from), nil
}

func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	return s.c.DoJSON(ctx, http.MethodPost, s.url, payload{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	}, nil)
}
