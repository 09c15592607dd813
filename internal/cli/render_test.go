package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
	"github.com/CJWorkbench/googlesheets/internal/httpfile"
)

func TestRenderCmd_Executes(t *testing.T) {
	input := filepath.Join(t.TempDir(), "fetched")
	err := httpfile.Write(input,
		httpfile.Meta{Status: "200 OK", ContentType: "text/csv"},
		strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--config-dir", t.TempDir(), "render", "--input", input})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "x", cellString("x"))
	assert.Equal(t, "1.5", cellString(1.5))
	assert.Equal(t, "2021-04-07T12:00:00Z",
		cellString(time.Date(2021, 4, 7, 12, 0, 0, 0, time.UTC)))
}

func TestMessageText(t *testing.T) {
	t.Run("plain message", func(t *testing.T) {
		msg := messageText(domain.Trans("error.http.status404",
			"File not found. Please choose a different file."))
		assert.Equal(t, "File not found. Please choose a different file.", msg)
	})

	t.Run("placeholder substitution", func(t *testing.T) {
		msg := messageText(domain.TransArgs("error.http.general",
			"Error fetching data from Google: {error}",
			map[string]any{"error": "boom"}))
		assert.Equal(t, "Error fetching data from Google: boom", msg)
	})

	t.Run("falls back to message ID", func(t *testing.T) {
		msg := messageText(domain.Message{ID: "py.lib.oauth.AccessTokenRefreshError"})
		assert.Equal(t, "py.lib.oauth.AccessTokenRefreshError", msg)
	})
}
