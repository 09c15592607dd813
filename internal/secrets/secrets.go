// Package secrets reads the host-resolved OAuth2 secret passed to each
// fetch invocation.
//
// Workbench runs OAuth before fetch. The module receives either the
// current access token or, when the host's refresh failed, an error
// message to surface verbatim. The module never stores, caches, or
// refreshes tokens.
package secrets

import (
	"context"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
	"github.com/CJWorkbench/googlesheets/internal/core/ports/driven"
)

// SecretName is the key the host stores this module's credentials under.
const SecretName = "google_credentials"

// Ensure Provider implements the port.
var _ driven.TokenProvider = (*Provider)(nil)

// Provider is a read-only TokenProvider over a resolved host secret.
type Provider struct {
	tokenType   string
	accessToken string
}

// NewProvider creates a Provider from a token pair. Used directly by
// the CLI, where the user supplies the token.
func NewProvider(tokenType, accessToken string) *Provider {
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &Provider{tokenType: tokenType, accessToken: accessToken}
}

// GetToken returns the access token the host resolved.
func (p *Provider) GetToken(_ context.Context) (string, error) {
	return p.accessToken, nil
}

// TokenType returns the token type, normally "Bearer".
func (p *Provider) TokenType() string {
	return p.tokenType
}

// IsAuthenticated returns true if a token is available.
func (p *Provider) IsAuthenticated() bool {
	return p.accessToken != ""
}

// Parse extracts the module's credentials from the host secret map.
// Returns a Provider, or a user-facing message when no usable secret is
// present: a "please connect" prompt when the secret is missing, or the
// host's own refresh-failure message passed through verbatim.
func Parse(raw map[string]any) (*Provider, *domain.Message) {
	secret, ok := raw[SecretName].(map[string]any)
	if !ok || secret == nil {
		m := domain.Trans("error.secrets.noCredentials", "Please connect to Google Drive.")
		return nil, &m
	}

	// The host passes refresh failures through as structured messages.
	if errVal, ok := secret["error"].(map[string]any); ok {
		id, _ := errVal["id"].(string)
		args, _ := errVal["arguments"].(map[string]any)
		m := domain.Message{ID: id, Arguments: args}
		return nil, &m
	}

	inner, ok := secret["secret"].(map[string]any)
	if !ok {
		m := domain.Trans("error.secrets.noCredentials", "Please connect to Google Drive.")
		return nil, &m
	}

	tokenType, _ := inner["token_type"].(string)
	accessToken, _ := inner["access_token"].(string)
	return NewProvider(tokenType, accessToken), nil
}
