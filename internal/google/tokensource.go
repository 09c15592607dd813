package google

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/CJWorkbench/googlesheets/internal/core/ports/driven"
)

// TokenSourceAdapter adapts the host's TokenProvider to oauth2.TokenSource.
// This lets Google API clients use the token the host already resolved,
// without the module ever storing or refreshing it.
type TokenSourceAdapter struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
// The returned TokenSource can be used with option.WithTokenSource() when
// creating Google API services.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &TokenSourceAdapter{
		provider: provider,
		ctx:      ctx,
	}
}

// Token implements oauth2.TokenSource.
// Called by Google API clients when they need an access token.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	accessToken, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}

	tokenType := t.provider.TokenType()
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   tokenType,
	}, nil
}
