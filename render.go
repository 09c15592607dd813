package googlesheets

import (
	"os"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
	"github.com/CJWorkbench/googlesheets/internal/httpfile"
	"github.com/CJWorkbench/googlesheets/internal/logger"
	"github.com/CJWorkbench/googlesheets/internal/params"
	"github.com/CJWorkbench/googlesheets/internal/parser"
)

// Render converts a stored fetch result into the host's Table.
// has_header is applied here, not at fetch time, because the user can
// toggle it without re-fetching. Returns the table or messages, never
// both.
func Render(rawParams map[string]any, fetchResult *domain.FetchResult) (*domain.Table, []domain.Message) {
	if fetchResult == nil {
		// Nothing fetched yet: empty table.
		return &domain.Table{}, nil
	}

	if len(fetchResult.Errors) > 0 {
		// Data and errors are mutually exclusive; a failed fetch has
		// nothing to render.
		return nil, fetchResult.Errors
	}

	if info, err := os.Stat(fetchResult.Path); err != nil || info.Size() == 0 {
		return &domain.Table{}, nil
	}

	p, err := params.Parse(rawParams)
	if err != nil {
		logger.Debug("render: bad params: %v", err)
		return nil, []domain.Message{
			domain.Trans("error.params.noFile", "Please choose a file"),
		}
	}

	meta, body, err := httpfile.Read(fetchResult.Path)
	if err != nil {
		// Very old fetch results were stored as Parquet tables, not
		// raw responses. The external conversion tooling that read
		// them is gone; ask the user to fetch again.
		if raw, readErr := os.ReadFile(fetchResult.Path); readErr == nil && parser.HasParquetMagic(raw) {
			return nil, []domain.Message{
				domain.Trans("error.parquet.deprecated",
					"This data was fetched by an older version of this step. Please fetch again."),
			}
		}
		logger.Debug("render: read stored fetch: %v", err)
		return nil, []domain.Message{badFormatMessage()}
	}

	table, err := parseBody(meta.ContentType, body, p.HasHeader)
	if err != nil {
		logger.Debug("render: parse %s: %v", meta.ContentType, err)
		return nil, []domain.Message{badFormatMessage()}
	}
	return table, nil
}

// parseBody picks a parser by the Content-Type recorded at fetch time.
func parseBody(contentType string, body []byte, hasHeader bool) (*domain.Table, error) {
	switch contentType {
	case "text/csv":
		return parser.ParseDelimited(body, ',', hasHeader)
	case "text/tab-separated-values":
		return parser.ParseDelimited(body, '\t', hasHeader)
	case parser.GridContentType:
		return parser.ParseGrid(body, hasHeader)
	case parser.MIMETypeXLSX:
		return parser.ParseXLSX(body, hasHeader)
	default:
		return nil, domain.ErrBadFormat
	}
}

func badFormatMessage() domain.Message {
	return domain.Trans("error.response.badFormat",
		"Google returned data in a format this step does not understand. Please try again.")
}
