package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL_InitializesLazily(t *testing.T) {
	log = nil

	l := L()

	require.NotNil(t, l)
	assert.Same(t, l, L())
}

func TestRequestIDContext(t *testing.T) {
	t.Run("Round-trip", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-123")

		assert.Equal(t, "req-123", RequestIDFrom(ctx))
	})

	t.Run("Missing id", func(t *testing.T) {
		assert.Equal(t, "", RequestIDFrom(context.Background()))
	})

	t.Run("FromCtx without id returns global logger", func(t *testing.T) {
		assert.Same(t, L(), FromCtx(context.Background()))
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("Generates an id when absent", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("Propagates a provided id", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "req-abc", seen)
	})
}
