package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/erracc/i18n"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_AccumulatedText(t *testing.T) {
	code, stdout, stderr := runCmd(t, "-config", "testdata/config.yaml")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Accumulated errors:")
	assert.Contains(t, stderr, "- hosts[1].url: invalid URL")
	assert.Contains(t, stderr, "- hosts[2].expected_status: invalid HTTP status code")
}

func TestRun_AccumulatedJSON(t *testing.T) {
	code, stdout, _ := runCmd(t, "-config", "testdata/config.yaml", "-json")
	assert.Equal(t, 1, code)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "hosts[1].url", entries[0]["path"])
	assert.Equal(t, "/hosts/1/url", entries[0]["pointer"])
	assert.Equal(t, "hosts[2].expected_status", entries[1]["path"])
}

func TestRun_FailFast(t *testing.T) {
	code, _, stderr := runCmd(t, "-config", "testdata/config.yaml", "-fail-fast")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "hosts[1]: url: invalid URL")
	assert.NotContains(t, stderr, "expected_status")
}

func TestRun_Japanese(t *testing.T) {
	code, _, stderr := runCmd(t, "-config", "testdata/config.yaml", "-lang", "ja")
	t.Cleanup(func() { i18n.SetLanguage("en") })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "累積エラー:")
}

func TestRun_Once(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "config.json")
	cfg := fmt.Sprintf(`{"interval": "1s", "hosts": [{"url": %q, "expected_status": 200}]}`, srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	code, _, stderr := runCmd(t, "-config", path, "-once", "-probe", "-log-format", "json")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, `"msg":"config loaded"`)
	assert.Contains(t, stderr, `"match":true`)
}

func TestRun_InvalidInvocation(t *testing.T) {
	code, _, _ := runCmd(t, "-log-level", "loud")
	assert.Equal(t, 2, code)

	code, _, stderr := runCmd(t, "-log-format", "xml")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `invalid log format "xml"`)

	code, _, _ = runCmd(t, "-no-such-flag")
	assert.Equal(t, 2, code)

	code, _, stderr = runCmd(t, "-config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "reading config")
}

func TestRun_DuplicateKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := `{"interval": "1s", "hosts": [{"url": "https://example.com", "url": "https://example.org", "expected_status": 200}]}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	code, _, stderr := runCmd(t, "-config", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "- hosts[0]: key 'url' is duplicated")
}
