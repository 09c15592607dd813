package googlesheets

import (
	"context"

	"google.golang.org/api/option"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
	"github.com/CJWorkbench/googlesheets/internal/fetcher"
	"github.com/CJWorkbench/googlesheets/internal/google"
	"github.com/CJWorkbench/googlesheets/internal/httpfile"
	"github.com/CJWorkbench/googlesheets/internal/logger"
	"github.com/CJWorkbench/googlesheets/internal/params"
	"github.com/CJWorkbench/googlesheets/internal/secrets"
)

// Scopes returns the OAuth2 scopes the host's authorization flow should
// request for this module. Static metadata; the module never runs the
// flow itself.
func Scopes() []string {
	return google.Scopes()
}

// Fetch is the host's fetch entry point. rawParams and rawSecrets are
// the host-marshalled parameter and secret maps; the raw API response
// is stored at outputPath. Exactly one of {stored data, error
// messages} is produced. opts lets tests redirect the API clients at a
// local server.
func Fetch(ctx context.Context, rawParams, rawSecrets map[string]any, outputPath string, opts ...option.ClientOption) domain.FetchResult {
	p, err := params.Parse(rawParams)
	if err != nil {
		logger.Debug("fetch: bad params: %v", err)
		return fetchError(outputPath,
			domain.Trans("error.params.noFile", "Please choose a file"))
	}

	provider, msg := secrets.Parse(rawSecrets)
	if msg != nil {
		return fetchError(outputPath, *msg)
	}

	f, err := fetcher.NewWithProvider(ctx, provider, opts...)
	if err != nil {
		logger.Warn("fetch: create API clients: %v", err)
		return fetchError(outputPath, domain.TransArgs("error.http.general",
			"Error fetching data from Google: {error}",
			map[string]any{"error": err.Error()}))
	}

	return f.Fetch(ctx, p, outputPath)
}

// fetchError truncates the output file and returns a one-message
// result. Data and errors are mutually exclusive.
func fetchError(outputPath string, msg domain.Message) domain.FetchResult {
	if err := httpfile.Truncate(outputPath); err != nil {
		logger.Warn("truncate %s: %v", outputPath, err)
	}
	return domain.FetchResult{Path: outputPath, Errors: []domain.Message{msg}}
}
