package secret

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Env resolves secrets from environment variables, for runs without a
// vault. A secret named FOO is read from $FOO, or from the file named by
// $FOO_FILE when the variable itself is unset.
type Env struct{}

func (Env) GetSecret(_ context.Context, name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		if path := os.Getenv(name + "_FILE"); path != "" {
			content, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("read secret file for %s: %w", name, err)
			}
			value = string(content)
		}
	}
	if value == "" {
		return "", fmt.Errorf("secret %s: environment variable not set", name)
	}
	return strings.TrimSpace(value), nil
}
