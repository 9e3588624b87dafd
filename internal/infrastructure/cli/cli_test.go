package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRoot wires a root command against an isolated config file so tests
// never touch the user's ~/.timely.
func buildRoot(t *testing.T) *cobra.Command {
	t.Helper()
	t.Setenv("TIMELY_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	root, err := NewRootCmd(context.Background(), Options{})
	require.NoError(t, err)
	return root
}

func execute(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootPrintsCurrentTime(t *testing.T) {
	out, err := execute(t, buildRoot(t))
	require.NoError(t, err)
	assert.Contains(t, out, "The current time is:")
}

func TestRootStatisticsFlag(t *testing.T) {
	out, err := execute(t, buildRoot(t), "--statistics")
	require.NoError(t, err)
	assert.Contains(t, out, "Time Statistics:")
	assert.Contains(t, out, "Day of the year:")
}

func TestHistoryRejectsInvalidDate(t *testing.T) {
	_, err := execute(t, buildRoot(t), "history", "-m", "4", "-d", "31", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'04-31' is not a valid calendar date")
}

func TestHistoryRejectsInvalidLanguage(t *testing.T) {
	_, err := execute(t, buildRoot(t), "history", "-l", "eng", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid ISO-639-1 language code")
}

func TestHistoryRejectsUnknownCategory(t *testing.T) {
	_, err := execute(t, buildRoot(t), "history", "-c", "battles", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestHistoryFetchesAndRenders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rest_v1/feed/onthisday/events/2/29", r.URL.Path)
		w.Write([]byte(`{"events":[{"year":1990,"text":"A happened"},{"year":2005,"text":"B happened"}]}`))
	}))
	defer srv.Close()
	t.Setenv("TIMELY_API_BASE", srv.URL)

	out, err := execute(t, buildRoot(t), "history", "-m", "2", "-d", "29", "--quiet")
	require.NoError(t, err)

	assert.Contains(t, out, "February 29")
	assert.Contains(t, out, "B happened")
	assert.Contains(t, out, "A happened")
}

func TestHistorySurfacesUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	t.Setenv("TIMELY_API_BASE", srv.URL)

	_, err := execute(t, buildRoot(t), "history", "-m", "2", "-d", "29", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, buildRoot(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "timely version")
}
