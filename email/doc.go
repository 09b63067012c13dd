// Package email dispatches the alert summary as a plain-text email. The
// Sender interface decouples the pipeline from the provider; SMTPSender is
// the go-mail backed implementation configured from a connection string.
package email
