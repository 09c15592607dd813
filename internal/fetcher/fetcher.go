// Package fetcher performs the one authenticated Google API call of a
// fetch invocation and stores the raw response for render.
//
// The adapter is stateless: each Fetch is a pure function of the
// parameters and the injected token, and nothing persists across
// invocations. There are no retries and no caching; a failed call is
// terminal and the host decides whether to re-invoke.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/google/uuid"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
	"github.com/CJWorkbench/googlesheets/internal/core/ports/driven"
	"github.com/CJWorkbench/googlesheets/internal/google"
	"github.com/CJWorkbench/googlesheets/internal/httpfile"
	"github.com/CJWorkbench/googlesheets/internal/logger"
	"github.com/CJWorkbench/googlesheets/internal/parser"
)

// MaxFetchBytes caps downloaded bodies. Anything larger fails fast
// rather than exhausting the fetcher's disk.
const MaxFetchBytes = 100 << 20 // 100MB

// exportMIMEType is what native Google Sheets are exported as. The
// export endpoint's charset headers are wrong (the body is always
// utf-8), so the reported Content-Type is ignored and this constant is
// stored instead.
const exportMIMEType = "text/csv"

// gridFields is the Sheets API field mask for range reads: the
// effective (computed) cell values plus the number format, which is
// what distinguishes a date from a plain number.
const gridFields = "sheets(data(rowData(values(effectiveValue,effectiveFormat.numberFormat.type))))"

// Fetcher makes the single outbound call of an invocation.
type Fetcher struct {
	drive   *drive.Service
	sheets  *sheets.Service
	limiter *google.RateLimiter
}

// New creates a Fetcher from pre-built API services. Tests use this to
// point the services at a local server.
func New(driveSvc *drive.Service, sheetsSvc *sheets.Service) *Fetcher {
	return &Fetcher{
		drive:   driveSvc,
		sheets:  sheetsSvc,
		limiter: google.NewRateLimiter(google.ServiceDrive),
	}
}

// NewWithProvider creates a Fetcher whose API clients authenticate with
// the host-resolved token.
func NewWithProvider(ctx context.Context, provider driven.TokenProvider, opts ...option.ClientOption) (*Fetcher, error) {
	ts := google.NewTokenSource(ctx, provider)

	driveSvc, err := google.NewDriveService(ctx, ts, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive client: %w", err)
	}
	sheetsSvc, err := google.NewSheetsService(ctx, ts, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	return New(driveSvc, sheetsSvc), nil
}

// Fetch performs one authenticated call for params and stores the raw
// response at outputPath. Exactly one of {stored data, error messages}
// results; on failure the file is truncated to zero bytes.
func (f *Fetcher) Fetch(ctx context.Context, params domain.Params, outputPath string) domain.FetchResult {
	id := uuid.NewString()

	if err := params.Validate(); err != nil {
		logger.Debug("fetch %s: rejected params: %v", id, err)
		return f.fail(outputPath, validationMessage(params))
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return f.fail(outputPath, errorMessage(err))
	}

	var (
		meta httpfile.Meta
		body []byte
		err  error
	)
	switch {
	case params.Range != "":
		logger.Debug("fetch %s: grid read %s!%s", id, params.File.ID, params.Range)
		meta, body, err = f.fetchGrid(ctx, params.File.ID, params.Range)
	case params.SheetMIMEType() == domain.MIMETypeGoogleSheet:
		logger.Debug("fetch %s: export %s as %s", id, params.File.ID, exportMIMEType)
		meta, body, err = f.exportFile(ctx, params.File.ID)
	default:
		logger.Debug("fetch %s: download %s (%s)", id, params.File.ID, params.SheetMIMEType())
		meta, body, err = f.downloadFile(ctx, params.File.ID, params.SheetMIMEType())
	}
	if err != nil {
		logger.Debug("fetch %s: %v", id, err)
		return f.fail(outputPath, errorMessage(err))
	}

	if err := httpfile.Write(outputPath, meta, bytes.NewReader(body)); err != nil {
		logger.Warn("fetch %s: store result: %v", id, err)
		return f.fail(outputPath, errorMessage(err))
	}

	logger.Info("fetch %s: stored %d bytes (%s)", id, len(body), meta.ContentType)
	return domain.FetchResult{Path: outputPath}
}

// fetchGrid reads a typed cell grid through the Sheets API.
func (f *Fetcher) fetchGrid(ctx context.Context, fileID, cellRange string) (httpfile.Meta, []byte, error) {
	ss, err := f.sheets.Spreadsheets.Get(fileID).
		Ranges(cellRange).
		Fields(gridFields).
		Context(ctx).
		Do()
	if err != nil {
		return httpfile.Meta{}, nil, google.WrapError(err)
	}
	if len(ss.Sheets) == 0 || len(ss.Sheets[0].Data) == 0 {
		return httpfile.Meta{}, nil, fmt.Errorf("%w: grid response has no data", domain.ErrBadFormat)
	}

	body, err := json.Marshal(ss)
	if err != nil {
		return httpfile.Meta{}, nil, fmt.Errorf("encode grid: %w", err)
	}

	meta := httpfile.Meta{
		URL:         fmt.Sprintf("%sspreadsheets/%s", f.sheets.BasePath, fileID),
		Status:      "200 OK",
		ContentType: parser.GridContentType,
	}
	return meta, body, nil
}

// exportFile exports a native Google Sheet as CSV through the Drive API.
func (f *Fetcher) exportFile(ctx context.Context, fileID string) (httpfile.Meta, []byte, error) {
	resp, err := f.drive.Files.Export(fileID, exportMIMEType).Context(ctx).Download()
	if err != nil {
		return httpfile.Meta{}, nil, google.WrapError(err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return httpfile.Meta{}, nil, err
	}

	meta := httpfile.Meta{
		URL:         fmt.Sprintf("%sfiles/%s/export?mimeType=%s", f.drive.BasePath, fileID, exportMIMEType),
		Status:      resp.Status,
		ContentType: exportMIMEType,
	}
	return meta, body, nil
}

// downloadFile downloads a non-native file's raw bytes through the
// Drive API. fallbackMIME is the type the host recorded at pick time,
// used when the response omits a usable Content-Type.
func (f *Fetcher) downloadFile(ctx context.Context, fileID, fallbackMIME string) (httpfile.Meta, []byte, error) {
	resp, err := f.drive.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return httpfile.Meta{}, nil, google.WrapError(err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return httpfile.Meta{}, nil, err
	}

	contentType := fallbackMIME
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		// Drop charset parameters: Google's are unreliable and the
		// body is treated as utf-8 anyway.
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			contentType = mediaType
		}
	}

	meta := httpfile.Meta{
		URL:         fmt.Sprintf("%sfiles/%s?alt=media", f.drive.BasePath, fileID),
		Status:      resp.Status,
		ContentType: contentType,
	}
	return meta, body, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	if len(body) > MaxFetchBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidInput, MaxFetchBytes)
	}
	return body, nil
}

// fail truncates the output file and returns a one-message result,
// keeping data and errors mutually exclusive.
func (f *Fetcher) fail(outputPath string, msg domain.Message) domain.FetchResult {
	if err := httpfile.Truncate(outputPath); err != nil {
		logger.Warn("truncate %s: %v", outputPath, err)
	}
	return domain.FetchResult{Path: outputPath, Errors: []domain.Message{msg}}
}
