package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/CJWorkbench/googlesheets"
	"github.com/CJWorkbench/googlesheets/internal/config"
	"github.com/CJWorkbench/googlesheets/internal/core/domain"
	"github.com/CJWorkbench/googlesheets/internal/secrets"
)

var (
	fetchFileID    string
	fetchMIMEType  string
	fetchRange     string
	fetchHasHeader bool
	fetchToken     string
	fetchTokenFile string
	fetchOutput    string
	fetchTimeout   time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a sheet and store the raw response",
	Long: `Performs one authenticated fetch, exactly as the host would, and
stores the raw response at --output for a later render.

The access token comes from --token, the GOOGLE_ACCESS_TOKEN
environment variable, or the file named by --token-file (or the
config file's token_file).`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchFileID, "file-id", "", "Drive file ID of the spreadsheet (required)")
	fetchCmd.Flags().StringVar(&fetchMIMEType, "mime-type", domain.MIMETypeGoogleSheet,
		"the file's MIME type; native Google Sheets are exported as CSV")
	fetchCmd.Flags().StringVar(&fetchRange, "range", "",
		"worksheet range (e.g. 'Sheet1!A1:D'); reads a typed cell grid instead of downloading")
	fetchCmd.Flags().BoolVar(&fetchHasHeader, "has-header", true, "first row names the columns")
	fetchCmd.Flags().StringVar(&fetchToken, "token", "", "OAuth2 access token")
	fetchCmd.Flags().StringVar(&fetchTokenFile, "token-file", "", "file containing an OAuth2 access token")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "path to store the fetch result (required)")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "fetch timeout")
	_ = fetchCmd.MarkFlagRequired("file-id")
	_ = fetchCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	token, err := resolveToken()
	if err != nil {
		return err
	}

	rawParams := map[string]any{
		"file": map[string]any{
			"id":       fetchFileID,
			"mimeType": fetchMIMEType,
		},
		"range":      fetchRange,
		"has_header": fetchHasHeader,
	}
	rawSecrets := map[string]any{
		secrets.SecretName: map[string]any{
			"secret": map[string]any{
				"token_type":   "Bearer",
				"access_token": token,
			},
		},
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	result := googlesheets.Fetch(ctx, rawParams, rawSecrets, fetchOutput)
	if !result.OK() {
		for _, msg := range result.Errors {
			cmd.PrintErrln(messageText(msg))
		}
		return errors.New("fetch failed")
	}

	cmd.Printf("Stored fetch result at %s\n", result.Path)
	return nil
}

// resolveToken finds an access token: flag, environment, token file,
// config file, in that order.
func resolveToken() (string, error) {
	if fetchToken != "" {
		return fetchToken, nil
	}
	if token := os.Getenv("GOOGLE_ACCESS_TOKEN"); token != "" {
		return token, nil
	}

	tokenFile := fetchTokenFile
	if tokenFile == "" {
		cfg, err := config.Load(configDir)
		if err != nil {
			return "", err
		}
		tokenFile = cfg.TokenFile
	}
	if tokenFile == "" {
		return "", errors.New("no access token: pass --token, set GOOGLE_ACCESS_TOKEN, or configure token_file")
	}

	data, err := os.ReadFile(tokenFile)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// messageText renders a host message for the terminal: the en-US text
// with {placeholders} substituted.
func messageText(msg domain.Message) string {
	text := msg.Default
	if text == "" {
		text = msg.ID
	}
	for key, val := range msg.Arguments {
		text = strings.ReplaceAll(text, "{"+key+"}", fmt.Sprint(val))
	}
	return text
}
