package lesson

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method      string
	ContentType string
	Body        string
}

type capture struct {
	mu   sync.Mutex
	reqs []capturedRequest
}

func (c *capture) all() []capturedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]capturedRequest(nil), c.reqs...)
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *capture) {
	t.Helper()
	captured := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		captured.mu.Lock()
		captured.reqs = append(captured.reqs, capturedRequest{
			Method:      r.Method,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(b),
		})
		captured.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func checkedSet(formats ...Format) func(Format) bool {
	set := make(map[Format]bool, len(formats))
	for _, f := range formats {
		set[f] = true
	}
	return func(f Format) bool { return set[f] }
}

func TestGenerate_SendsJSONPost(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{"text":"Plants convert light to energy."}`)
	c := NewClient(Config{Endpoint: srv.URL})

	req := NewRequest("Photosynthesis", "beginner", checkedSet(FormatDiagram))
	res, err := c.Generate(context.Background(), req)
	require.NoError(t, err)

	reqs := captured.all()
	require.Len(t, reqs, 1)
	got := reqs[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "application/json", got.ContentType)
	assert.Equal(t, `{"topic":"Photosynthesis","difficulty":"beginner","formats":["diagram"]}`, got.Body)

	require.True(t, res.HasText())
	assert.Equal(t, "Plants convert light to energy.", *res.Text)
	assert.False(t, res.HasImage())
	assert.False(t, res.HasAudio())
}

func TestGenerate_EmptyFormatsIsArray(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)
	c := NewClient(Config{Endpoint: srv.URL})

	res, err := c.Generate(context.Background(), NewRequest("", "advanced", checkedSet()))
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())

	reqs := captured.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, `{"topic":"","difficulty":"advanced","formats":[]}`, reqs[0].Body)
}

func TestGenerate_ServerError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError, `{"detail":"boom"}`)
	c := NewClient(Config{Endpoint: srv.URL})

	_, err := c.Generate(context.Background(), NewRequest("x", "beginner", checkedSet()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))

	var srvErr *ErrServer
	require.True(t, errors.As(err, &srvErr))
	assert.Equal(t, http.StatusInternalServerError, srvErr.StatusCode)
	assert.Equal(t, "Server error: Internal Server Error", err.Error())
}

func TestGenerate_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `<html>not json</html>`)
	c := NewClient(Config{Endpoint: srv.URL})

	_, err := c.Generate(context.Background(), NewRequest("x", "beginner", checkedSet()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))

	var malformed *ErrMalformedResponse
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "<html>not json</html>", string(malformed.Body))
}

func TestGenerate_NullBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, "null\n")
	c := NewClient(Config{Endpoint: srv.URL})

	res, err := c.Generate(context.Background(), NewRequest("x", "beginner", checkedSet()))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrRequestFailed))

	var malformed *ErrMalformedResponse
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "invalid response body: response body is null", err.Error())
}

func TestGenerate_NonStringFieldKeepsOthers(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"text":42,"imageUrl":"http://x/img.png"}`)
	c := NewClient(Config{Endpoint: srv.URL})

	res, err := c.Generate(context.Background(), NewRequest("x", "beginner", checkedSet()))
	require.NoError(t, err)
	require.True(t, res.HasText())
	assert.Equal(t, "42", *res.Text)
	require.True(t, res.HasImage())
	assert.Equal(t, "http://x/img.png", *res.ImageURL)
}

func TestGenerate_TransportFailure(t *testing.T) {
	// Grab a free port, then close the listener so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := NewClient(Config{Endpoint: "http://" + addr + "/generate"})
	_, err = c.Generate(context.Background(), NewRequest("x", "beginner", checkedSet()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))

	var transport *ErrTransport
	assert.True(t, errors.As(err, &transport))
}

func TestGenerate_TimeoutIsOptIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)

	bounded := NewClient(Config{Endpoint: srv.URL, Timeout: 20 * time.Millisecond})
	_, err := bounded.Generate(context.Background(), NewRequest("x", "beginner", checkedSet()))
	assert.Error(t, err)

	unbounded := NewClient(Config{Endpoint: srv.URL})
	_, err = unbounded.Generate(context.Background(), NewRequest("x", "beginner", checkedSet()))
	assert.NoError(t, err)
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	c := NewClient(Config{})
	assert.Equal(t, "http://localhost:8000/generate", c.Endpoint())
}

func TestReasonPhrase(t *testing.T) {
	tests := []struct {
		code   int
		status string
		want   string
	}{
		{404, "404 Not Found", "Not Found"},
		{503, "503 Service Unavailable", "Service Unavailable"},
		{418, "418 Custom Teapot", "Custom Teapot"},
		{500, "", "Internal Server Error"},
		{502, "502", "Bad Gateway"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reasonPhrase(tt.code, tt.status), "status %q", tt.status)
	}
}
