package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Plants convert light to energy.","audioUrl":"http://x/a.mp3"}`))
	}))
	defer srv.Close()

	out, err := runRoot(t, "generate",
		"--endpoint", srv.URL,
		"--log-file", filepath.Join(t.TempDir(), "edugenie.log"),
		"--topic", "Photosynthesis",
		"--difficulty", "intermediate",
		"--diagram=false", "--audio=true", "--video=false",
	)
	require.NoError(t, err)

	assert.Equal(t, "Photosynthesis", body["topic"])
	assert.Equal(t, "intermediate", body["difficulty"])
	assert.Equal(t, []any{"audio"}, body["formats"])
	assert.Contains(t, out, "Plants convert light to energy.")
	assert.Contains(t, out, "http://x/a.mp3")
}

func TestGenerateCommandServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, err := runRoot(t, "generate",
		"--endpoint", srv.URL,
		"--log-file", filepath.Join(t.TempDir(), "edugenie.log"),
		"--topic", "Gravity",
		"--difficulty", "beginner",
		"--diagram=false", "--audio=false", "--video=false",
	)
	require.Error(t, err)
	assert.Contains(t, out, "Oops! Something went wrong. Server error: Internal Server Error")
}

func TestGenerateCommandRejectsUnknownDifficulty(t *testing.T) {
	_, err := runRoot(t, "generate",
		"--log-file", filepath.Join(t.TempDir(), "edugenie.log"),
		"--difficulty", "expert",
	)
	assert.ErrorContains(t, err, "invalid difficulty")
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "edugenie")
}
