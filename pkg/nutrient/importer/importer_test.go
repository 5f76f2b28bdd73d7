package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growlog/pkg/apperr"
)

func serve(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchMetaTags(t *testing.T) {
	srv := serve(t, "text/html; charset=utf-8", `<html><head>
<title>Shop | Bloom A</title>
<meta property="og:title" content="Bloom A">
<meta name="description" content="Two-part bloom base.">
</head><body><p>ignored</p></body></html>`)

	p, err := New([]string{"127.0.0.1"}, 1<<20).Fetch(context.Background(), srv.URL+"/bloom-a")
	require.NoError(t, err)
	assert.Equal(t, "Bloom A", p.Name)
	assert.Equal(t, "Two-part bloom base.", p.Detail)
}

func TestFetchFallsBackToContent(t *testing.T) {
	srv := serve(t, "text/html", `<html><head><title>Root Juice</title></head><body>
<nav><p>menu</p></nav>
<main><p>Stimulates   root growth.</p><ul><li>1-2 ml/L</li></ul></main>
</body></html>`)

	p, err := New([]string{"127.0.0.1"}, 1<<20).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Root Juice", p.Name)
	assert.Equal(t, "Stimulates root growth.\n1-2 ml/L", p.Detail)
}

func TestFetchRejects(t *testing.T) {
	srv := serve(t, "application/json", `{}`)

	t.Run("domain not allowed", func(t *testing.T) {
		_, err := New([]string{"example.com"}, 1<<20).Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, ErrDomainNotAllowed)
	})
	for _, raw := range []string{"ftp://127.0.0.1/x", "not a url", "http://", "%zz"} {
		t.Run("malformed "+raw, func(t *testing.T) {
			_, err := New([]string{"127.0.0.1"}, 1<<20).Fetch(context.Background(), raw)
			require.True(t, apperr.IsValidation(err), "%v", err)
			assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
		})
	}
	t.Run("not html", func(t *testing.T) {
		_, err := New([]string{"127.0.0.1"}, 1<<20).Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, ErrFetchFailed)
		assert.ErrorContains(t, err, "unsupported content-type")
	})
}

func TestFetchUpstreamFailures(t *testing.T) {
	missing := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(missing.Close)

	t.Run("non-200", func(t *testing.T) {
		_, err := New([]string{"127.0.0.1"}, 1<<20).Fetch(context.Background(), missing.URL+"/gone")
		assert.ErrorIs(t, err, ErrFetchFailed)
		assert.ErrorContains(t, err, "status 404")
	})
	t.Run("too large", func(t *testing.T) {
		srv := serve(t, "text/html", "<html><body><p>"+strings.Repeat("x", 64)+"</p></body></html>")
		_, err := New([]string{"127.0.0.1"}, 16).Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, ErrFetchFailed)
	})
	t.Run("unreachable", func(t *testing.T) {
		down := httptest.NewServer(http.NotFoundHandler())
		addr := down.URL
		down.Close()
		_, err := New([]string{"127.0.0.1"}, 1<<20).Fetch(context.Background(), addr)
		assert.ErrorIs(t, err, ErrFetchFailed)
	})
}
