package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCluster answers the info call and applies external versioning to
// document writes the way Elasticsearch does.
type fakeCluster struct {
	mu       sync.Mutex
	versions map[string]int64
	bodies   map[string]string
	failWith int
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodGet && r.URL.Path == "/" {
		_, _ = w.Write([]byte(`{"version":{"number":"8.19.1"}}`))
		return
	}
	if f.failWith != 0 {
		w.WriteHeader(f.failWith)
		_, _ = w.Write([]byte(`{}`))
		return
	}

	version, err := strconv.ParseInt(r.URL.Query().Get("version"), 10, 64)
	if err != nil || r.URL.Query().Get("version_type") != "external" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{}`))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if current, ok := f.versions[r.URL.Path]; ok && version <= current {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"type":"version_conflict_engine_exception"}}`))
		return
	}
	body, _ := io.ReadAll(r.Body)
	f.versions[r.URL.Path] = version
	f.bodies[r.URL.Path] = string(body)
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(`{"result":"created"}`))
}

func newTestClient(t *testing.T) (*Client, *fakeCluster) {
	t.Helper()
	cluster := &fakeCluster{versions: map[string]int64{}, bodies: map[string]string{}}
	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client, cluster
}

func TestIndexDocument_StaleVersionDoesNotOverwrite(t *testing.T) {
	client, cluster := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.IndexDocument(ctx, "instances", "i-1", 3, map[string]string{"remaining_quantity": "40"}))
	require.NoError(t, client.IndexDocument(ctx, "instances", "i-1", 2, map[string]string{"remaining_quantity": "90"}))

	assert.Equal(t, int64(3), cluster.versions["/instances/_doc/i-1"])
	assert.Contains(t, cluster.bodies["/instances/_doc/i-1"], `"40"`)

	require.NoError(t, client.IndexDocument(ctx, "instances", "i-1", 4, map[string]string{"remaining_quantity": "10"}))
	assert.Contains(t, cluster.bodies["/instances/_doc/i-1"], `"10"`)
}

func TestIndexDocument_Error(t *testing.T) {
	client, cluster := newTestClient(t)
	cluster.failWith = http.StatusInternalServerError

	err := client.IndexDocument(context.Background(), "instances", "i-1", 1, map[string]string{})

	assert.ErrorContains(t, err, "500")
}
