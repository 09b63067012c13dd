package email

import "context"

// Message is one outbound plain-text email.
type Message struct {
	Subject          string
	PlainText        string
	SenderAddress    string
	RecipientAddress string
	RecipientName    string
}

// Sender submits an email and blocks until the provider reports the
// terminal result. Implementations do not retry.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
