package driven

import "context"

// TokenProvider provides the OAuth2 access token for authenticated API
// calls. The host resolves the secret reference before invoking the
// module; implementations are read-only capabilities over that secret.
// Token refresh is the host's job, never the module's.
type TokenProvider interface {
	// GetToken returns the current access token.
	GetToken(ctx context.Context) (string, error)

	// TokenType returns the token type, normally "Bearer".
	TokenType() string

	// IsAuthenticated returns true if a token is available.
	IsAuthenticated() bool
}
