package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/config"
)

func newFakeES(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`{"cluster_name":"test","version":{"number":"9.0.0"}}`))
		case "/product/_count":
			_, _ = w.Write([]byte(`{"count":12,"_shards":{"total":1}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"index_not_found_exception"},"status":404}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCountDocuments(t *testing.T) {
	srv := newFakeES(t)
	ctx := context.Background()

	es, err := NewClient(ctx, config.ESConfig{URL: srv.URL}, nil)
	require.NoError(t, err)

	n, err := CountDocuments(ctx, es, "product")
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)

	_, err = CountDocuments(ctx, es, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIndexNotFound)
}

func TestNewClient_RequiresURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(context.Background(), config.ESConfig{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingEnv)
}
