package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestMyMemory_DirectEndpoint(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "How are you today?", r.URL.Query().Get("q"))
		assert.Equal(t, "en|es", r.URL.Query().Get("langpair"))
		assert.Equal(t, "me@example.com", r.URL.Query().Get("de"))
		assert.Empty(t, r.Header.Get("X-RapidAPI-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"responseData": {"translatedText": "¿Cómo estás hoy?", "match": 0.99},
			"responseStatus": 200,
			"responseDetails": "",
			"matches": [
				{"translation": "¿Cómo estás hoy?"},
				{"translation": "¿Qué tal estás hoy?"}
			]
		}`))
	})

	m := NewMyMemory(MyMemoryConfig{Email: "me@example.com", BaseURL: srv.URL})
	res, err := m.Translate(context.Background(), "  How are you today?  ", "", "")
	require.NoError(t, err)

	assert.Equal(t, "¿Cómo estás hoy?", res.Text)
	assert.Equal(t, "en", res.From)
	assert.Equal(t, "es", res.To)
	assert.Equal(t, "MyMemory API", res.Source)
	assert.True(t, res.Reliable())
	assert.Equal(t, []string{"¿Qué tal estás hoy?"}, res.Alternatives)
}

func TestMyMemory_RapidAPIHeaders(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rapid-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, myMemoryRapidHost, r.Header.Get("X-RapidAPI-Host"))
		assert.Empty(t, r.URL.Query().Get("de"), "email is only sent to the direct endpoint")
		w.Write([]byte(`{"responseData":{"translatedText":"Hola","match":1},"responseStatus":200}`))
	})

	m := NewMyMemory(MyMemoryConfig{APIKey: "rapid-key", Email: "me@example.com", BaseURL: srv.URL})
	res, err := m.Translate(context.Background(), "Hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "Hola", res.Text)
}

func TestMyMemory_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		body       string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "quota as quoted status",
			httpStatus: http.StatusOK,
			body:       `{"responseData":{"translatedText":"MYMEMORY WARNING"},"responseStatus":"429","responseDetails":"Daily request limit reached"}`,
			wantStatus: 429,
			wantDetail: "Daily request limit reached",
		},
		{
			name:       "numeric 403",
			httpStatus: http.StatusOK,
			body:       `{"responseData":{"translatedText":""},"responseStatus":403,"responseDetails":"INVALID LANGUAGE PAIR"}`,
			wantStatus: 403,
			wantDetail: "INVALID LANGUAGE PAIR",
		},
		{
			name:       "non-JSON gateway error",
			httpStatus: http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.httpStatus)
				w.Write([]byte(tc.body))
			})

			m := NewMyMemory(MyMemoryConfig{BaseURL: srv.URL})
			_, err := m.Translate(context.Background(), "Hello", "en", "es")
			require.Error(t, err)

			var terr *Error
			require.True(t, errors.As(err, &terr), "got %T: %v", err, err)
			assert.Equal(t, tc.wantStatus, terr.Status)
			if tc.wantDetail != "" {
				assert.Equal(t, tc.wantDetail, terr.Details)
			}
		})
	}
}

func TestMyMemory_EmptyText(t *testing.T) {
	m := NewMyMemory(MyMemoryConfig{BaseURL: "http://127.0.0.1:0"})
	_, err := m.Translate(context.Background(), "   ", "en", "es")
	assert.ErrorIs(t, err, ErrEmptyText)
}

type countingTranslator struct {
	calls atomic.Int32
	err   error
}

func (c *countingTranslator) Translate(_ context.Context, text, from, to string) (Result, error) {
	c.calls.Add(1)
	if c.err != nil {
		return Result{}, c.err
	}
	return Result{Text: "es:" + text, From: from, To: to}, nil
}

func TestCached(t *testing.T) {
	inner := &countingTranslator{}
	c := NewCached(inner, 2)
	ctx := context.Background()

	r1, err := c.Translate(ctx, "hello", "en", "es")
	require.NoError(t, err)
	r2, err := c.Translate(ctx, "hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.EqualValues(t, 1, inner.calls.Load())

	_, _ = c.Translate(ctx, "hello", "en", "fr")
	assert.Equal(t, 2, c.Len())

	// Full: the next insert starts a fresh cache.
	_, _ = c.Translate(ctx, "bye", "en", "es")
	assert.Equal(t, 1, c.Len())
}

func TestCached_DoesNotCacheErrors(t *testing.T) {
	inner := &countingTranslator{err: &Error{Status: 500}}
	c := NewCached(inner, 10)

	for range 2 {
		_, err := c.Translate(context.Background(), "hello", "en", "es")
		require.Error(t, err)
	}
	assert.EqualValues(t, 2, inner.calls.Load())
	assert.Zero(t, c.Len())
}
