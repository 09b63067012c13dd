package secret

import "context"

// Provider resolves a named secret to its plain value.
type Provider interface {
	GetSecret(ctx context.Context, name string) (string, error)
}
