package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ncobase/pager/config"
	"github.com/ncobase/pager/logging/logger"
	"github.com/ncobase/pager/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	conf := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("logger:\n  output: stderr\npaging:\n  page_size: 3\n"), 0644))

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--conf", conf}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func lines(n int) string {
	var b strings.Builder
	for i := range n {
		b.WriteString("item")
		b.WriteString(string(rune('a' + i)))
		b.WriteString("\n")
	}
	return b.String()
}

func TestPageText(t *testing.T) {
	out, err := run(t, lines(7), "page", "--page", "1")
	require.NoError(t, err)
	assert.Equal(t, "itemd\niteme\nitemf\n", out)
}

func TestPageLastAndPastEnd(t *testing.T) {
	out, err := run(t, lines(7), "page", "-p", "2")
	require.NoError(t, err)
	assert.Equal(t, "itemg\n", out)

	out, err = run(t, lines(7), "page", "-p", "3")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPageHugeSize(t *testing.T) {
	out, err := run(t, lines(3), "page", "--size", "9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, "itema\nitemb\nitemc\n", out)
}

func TestPageJSON(t *testing.T) {
	out, err := run(t, `[1, {"a": 2}, "x", 4]`, "--json", "page", "--size", "2", "--page", "1", "--format", "json")
	require.NoError(t, err)

	var got pageOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, []any{"x", float64(4)}, got.Items)
	assert.Equal(t, 2, got.TotalPages)
	assert.False(t, got.HasMore)
}

func TestPageFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines(4)), 0644))

	out, err := run(t, "", "page", path, "-s", "2", "-p", "1")
	require.NoError(t, err)
	assert.Equal(t, "itemc\nitemd\n", out)
}

func TestPageInvalidSize(t *testing.T) {
	_, err := run(t, lines(4), "page", "--size", "-1")
	assert.ErrorIs(t, err, paging.ErrInvalidPageSize)
}

func TestPageMissingFile(t *testing.T) {
	_, err := run(t, "", "page", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWalkText(t *testing.T) {
	out, err := run(t, lines(5), "walk")
	require.NoError(t, err)
	assert.Equal(t, "--- page 1/2 ---\nitema\nitemb\nitemc\n--- page 2/2 ---\nitemd\niteme\n", out)
}

func TestWalkJSONFrom(t *testing.T) {
	out, err := run(t, lines(7), "walk", "--from", "1", "-f", "json")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var pages []pageOutput
	for dec.More() {
		var p pageOutput
		require.NoError(t, dec.Decode(&p))
		pages = append(pages, p)
	}
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Page)
	assert.True(t, pages[0].HasMore)
	assert.Equal(t, []any{"itemg"}, pages[1].Items)
	assert.False(t, pages[1].HasMore)
}

func TestWalkEmpty(t *testing.T) {
	out, err := run(t, "", "walk")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := run(t, lines(2), "page", "-f", "xml")
	assert.Error(t, err)

	_, err = run(t, "", "walk", "-f", "xml")
	assert.EqualError(t, err, "unsupported format: xml")

	_, err = run(t, lines(2), "walk", "-f", "xml")
	assert.EqualError(t, err, "unsupported format: xml")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"goVersion"`)
}

func TestInitServeApp(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("run_mode: test\nlogger:\n  output: stderr\npaging:\n  page_size: 3\n"), 0644))
	cfg, err := config.LoadConfig(conf)
	require.NoError(t, err)

	sa, cleanup, err := initServeApp(cfg)
	require.NoError(t, err)
	defer cleanup()
	sa.logger.SetOutput(io.Discard)
	assert.Same(t, logger.StdLogger(), sa.logger)

	_, err = sa.collection.Load(context.Background(), []any{"a", "b", "c", "d"}, 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/1", nil)
	w := httptest.NewRecorder()
	sa.server.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var page map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, []any{"d"}, page["items"])
}

func TestInitServeAppBadLogger(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("logger:\n  output: file\n"), 0644))
	cfg, err := config.LoadConfig(conf)
	require.NoError(t, err)

	sa, _, err := initServeApp(cfg)
	assert.Error(t, err)
	assert.Nil(t, sa)
}
