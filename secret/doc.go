// Package secret resolves named secrets for the pipeline: the model API key
// and the SMTP connection string. KeyVault is the production provider,
// authenticating with the ambient Azure identity; Env serves local runs by
// reading secrets from the environment.
package secret
