package mail

import "context"

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender entrega correos transaccionales (OTP, confirmaciones).
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
