package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestClient_Shorten(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantLink string
		wantErr  error
	}{
		{
			name:     "short_url field",
			status:   http.StatusOK,
			body:     `{"short_url":"http://short.url/abc123","original_url":"https://example.com"}`,
			wantLink: "http://short.url/abc123",
		},
		{
			name:     "legacy shortUrl field",
			status:   http.StatusOK,
			body:     `{"shortUrl":"http://short.url/legacy"}`,
			wantLink: "http://short.url/legacy",
		},
		{
			name:     "short_url wins over legacy field",
			status:   http.StatusCreated,
			body:     `{"short_url":"http://short.url/new","shortUrl":"http://short.url/old"}`,
			wantLink: "http://short.url/new",
		},
		{
			name:    "invalid url from service",
			status:  http.StatusBadRequest,
			body:    `{"error":"Invalid URL"}`,
			wantErr: ErrInvalidURL,
		},
		{
			name:    "other business error",
			status:  http.StatusBadRequest,
			body:    `{"error":"Invalid JSON"}`,
			wantErr: ErrGeneric,
		},
		{
			name:    "server error with message",
			status:  http.StatusInternalServerError,
			body:    `{"error":"failed to store URL: redis down"}`,
			wantErr: ErrGeneric,
		},
		{
			name:    "server error without body",
			status:  http.StatusBadGateway,
			body:    ``,
			wantErr: ErrGeneric,
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{"short_url":`,
			wantErr: ErrGeneric,
		},
		{
			name:    "empty short url",
			status:  http.StatusOK,
			body:    `{"short_url":""}`,
			wantErr: ErrGeneric,
		},
		{
			name:    "no short url field",
			status:  http.StatusOK,
			body:    `{"status":"ok"}`,
			wantErr: ErrGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer ts.Close()

			c := New(ts.URL, zaptest.NewLogger(t))
			link, err := c.Shorten(context.Background(), "https://example.com")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantErr, err)
				assert.Empty(t, link)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLink, link)
		})
	}
}

func TestClient_Shorten_Request(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotReqID  string
		gotBody   map[string]any
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotReqID = r.Header.Get("X-Request-ID")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"short_url":"http://short.url/abc123"}`)
	}))
	defer ts.Close()

	c := New(ts.URL+"/", zaptest.NewLogger(t))
	_, err := c.Shorten(context.Background(), "not even a url")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, ShortenPath, gotPath)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, map[string]any{"url": "not even a url"}, gotBody)
}

func TestClient_Shorten_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.URL
	ts.Close()

	c := New(addr, zaptest.NewLogger(t))
	_, err := c.Shorten(context.Background(), "https://example.com")
	assert.Equal(t, ErrGeneric, err)
}

func TestClient_Shorten_CanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"short_url":"http://short.url/abc123"}`)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(ts.URL, zaptest.NewLogger(t))
	_, err := c.Shorten(ctx, "https://example.com")
	assert.Equal(t, ErrGeneric, err)
}

func TestClient_Health(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != HealthPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"healthy","storage":"redis"}`)
	}))
	defer ts.Close()

	c := New(ts.URL, zaptest.NewLogger(t))
	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, "redis", h.Storage)
}

func TestClient_Health_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := New(ts.URL, zaptest.NewLogger(t))
	_, err := c.Health(context.Background())
	assert.Error(t, err)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalidURL, KindOf(ErrInvalidURL))
	assert.Equal(t, KindGeneric, KindOf(ErrGeneric))
	assert.Equal(t, KindGeneric, KindOf(io.EOF))
	assert.Equal(t, "InvalidUrl", KindInvalidURL.String())
	assert.Equal(t, "Generic", KindGeneric.String())
}
