package secret

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// KeyVault fetches secrets from an Azure Key Vault using the default
// credential chain (managed identity in production, developer login
// locally).
type KeyVault struct {
	client *azsecrets.Client
}

// NewKeyVault creates a provider for the given vault URI.
func NewKeyVault(vaultURI string) (*KeyVault, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("azure credential: %w", err)
	}
	client, err := azsecrets.NewClient(vaultURI, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("key vault client for %s: %w", vaultURI, err)
	}
	return &KeyVault{client: client}, nil
}

// GetSecret fetches the latest version of a named secret.
func (kv *KeyVault) GetSecret(ctx context.Context, name string) (string, error) {
	resp, err := kv.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		return "", fmt.Errorf("get secret %s: %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("get secret %s: empty value", name)
	}
	return *resp.Value, nil
}
