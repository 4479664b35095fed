package search

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"madr/config"
	"madr/internal/domain/entity"
	"madr/internal/domain/service"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeCluster answers the subset of the Elasticsearch API the index uses.
type fakeCluster struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)})
	status, respBody := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusOK
	}
	if respBody == "" {
		respBody = `{}`
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, respBody)
}

func (f *fakeCluster) respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status, f.body = status, body
}

func (f *fakeCluster) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[len(f.requests)-1]
}

func newTestIndex(t *testing.T, cluster *fakeCluster) service.CatalogIndex {
	t.Helper()

	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)

	return NewElasticIndex(client, "madr-books")
}

func TestElasticIndex_IndexBook(t *testing.T) {
	cluster := &fakeCluster{status: http.StatusCreated, body: `{"result":"created"}`}
	idx := newTestIndex(t, cluster)

	book := &entity.Book{ID: uuid.New(), Title: "dom casmurro", Year: 1899, NovelistID: uuid.New()}
	require.NoError(t, idx.IndexBook(context.Background(), book))

	req := cluster.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/madr-books/_doc/"+book.ID.String(), req.Path)
	assert.Contains(t, req.Query, "refresh=true")

	var doc bookDocument
	require.NoError(t, json.Unmarshal([]byte(req.Body), &doc))
	assert.Equal(t, "dom casmurro", doc.Title)
	assert.Equal(t, 1899, doc.Year)
	assert.Equal(t, book.NovelistID.String(), doc.NovelistID)
}

func TestElasticIndex_IndexBookError(t *testing.T) {
	cluster := &fakeCluster{status: http.StatusInternalServerError}
	idx := newTestIndex(t, cluster)

	err := idx.IndexBook(context.Background(), &entity.Book{ID: uuid.New(), Title: "x", Year: 1, NovelistID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index book")
}

func TestElasticIndex_RemoveBook(t *testing.T) {
	cluster := &fakeCluster{}
	idx := newTestIndex(t, cluster)
	id := uuid.New()

	require.NoError(t, idx.RemoveBook(context.Background(), id))
	req := cluster.last()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/madr-books/_doc/"+id.String(), req.Path)

	cluster.respond(http.StatusNotFound, `{"result":"not_found"}`)
	assert.NoError(t, idx.RemoveBook(context.Background(), id))

	cluster.respond(http.StatusBadRequest, `{"error":"bad"}`)
	assert.Error(t, idx.RemoveBook(context.Background(), id))
}

func TestElasticIndex_SearchBooks(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	cluster := &fakeCluster{body: `{"hits":{"hits":[{"_id":"` + first.String() + `"},{"_id":"not-a-uuid"},{"_id":"` + second.String() + `"}]}}`}
	idx := newTestIndex(t, cluster)

	ids, err := idx.SearchBooks(context.Background(), "casmurro", entity.Page{Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, ids)

	req := cluster.last()
	assert.Equal(t, "/madr-books/_search", req.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &body))
	assert.EqualValues(t, 5, body["size"])
	assert.EqualValues(t, 10, body["from"])
	assert.True(t, strings.Contains(req.Body, `"casmurro"`))
}

func TestElasticIndex_SearchBooksError(t *testing.T) {
	cluster := &fakeCluster{status: http.StatusBadRequest, body: `{"error":"bad"}`}
	idx := newTestIndex(t, cluster)

	_, err := idx.SearchBooks(context.Background(), "x", entity.Page{})
	assert.Error(t, err)
}

func TestNoopIndex(t *testing.T) {
	idx := NewNoopIndex()

	assert.NoError(t, idx.IndexBook(context.Background(), &entity.Book{}))
	assert.NoError(t, idx.RemoveBook(context.Background(), uuid.New()))

	_, err := idx.SearchBooks(context.Background(), "x", entity.Page{})
	assert.ErrorIs(t, err, service.ErrSearchUnavailable)
}

func TestNewCatalogIndex(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("disabled uses noop", func(t *testing.T) {
		idx, err := NewCatalogIndex(IndexParams{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, noopIndex{}, idx)
	})

	t.Run("enabled without addresses fails", func(t *testing.T) {
		cfg := &config.Config{Search: &config.SearchConfig{Enabled: true, Index: "madr-books"}}
		_, err := NewCatalogIndex(IndexParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.Error(t, err)
	})

	t.Run("enabled checks the cluster on start", func(t *testing.T) {
		cluster := &fakeCluster{body: `{"version":{"number":"9.0.0"}}`}
		srv := httptest.NewServer(cluster)
		defer srv.Close()

		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Search: &config.SearchConfig{Enabled: true, Addresses: []string{srv.URL}, Index: "madr-books"}}
		idx, err := NewCatalogIndex(IndexParams{Lc: lc, Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &elasticIndex{}, idx)

		lc.RequireStart()
		assert.Equal(t, "/", cluster.last().Path)
		lc.RequireStop()
	})
}
