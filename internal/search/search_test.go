package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"placement-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  string
	body   map[string]interface{}
}

func newTestIndex(t *testing.T, status int, response string) (*Index, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.path = r.URL.Path
		c.query = r.URL.RawQuery
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &c.body)
		}
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewIndex(client, "opportunities"), c
}

const hitsResponse = `{
	"took": 4,
	"hits": {
		"total": {"value": 2},
		"max_score": 3.2,
		"hits": [
			{"_source": {"id": "1", "name": "Goldman Sachs", "role": "Investment Banking Analyst", "type": "Investment Bank", "typeKey": "investment bank"}},
			{"_source": {"id": "4", "name": "HDFC Bank", "role": "Management Trainee", "type": "Banking", "typeKey": "banking"}}
		]
	}
}`

func TestSearch(t *testing.T) {
	ix, req := newTestIndex(t, http.StatusOK, hitsResponse)

	res, err := ix.Search(context.Background(), Query{Keywords: "bank", Type: "Banking", Size: 500})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.TotalHits)
	assert.Equal(t, 3.2, res.MaxScore)
	assert.Equal(t, int64(4), res.Took)
	require.Len(t, res.Employers, 2)
	assert.Equal(t, "Goldman Sachs", res.Employers[0].Name)
	assert.Equal(t, "Investment Bank", res.Employers[0].Type)

	assert.Equal(t, "/opportunities/_search", req.path)
	assert.Contains(t, req.query, "size=100")
	assert.Contains(t, req.query, "from=0")

	boolQ := req.body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := boolQ["must"].([]interface{})
	mm := must[0].(map[string]interface{})["multi_match"].(map[string]interface{})
	assert.Equal(t, "bank", mm["query"])
	assert.Equal(t, []interface{}{"name^3", "role^2", "description", "location"}, mm["fields"])

	filter := boolQ["filter"].([]interface{})
	require.Len(t, filter, 1)
	assert.Equal(t, map[string]interface{}{"typeKey": "banking"}, filter[0].(map[string]interface{})["term"])
}

func TestSearch_MultiWordTypeIsOneTerm(t *testing.T) {
	ix, req := newTestIndex(t, http.StatusOK, hitsResponse)

	_, err := ix.Search(context.Background(), Query{Type: " Investment Bank "})
	require.NoError(t, err)

	boolQ := req.body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	filter := boolQ["filter"].([]interface{})
	require.Len(t, filter, 1)
	assert.Equal(t, map[string]interface{}{"typeKey": "investment bank"}, filter[0].(map[string]interface{})["term"])

	props := indexMapping["mappings"].(map[string]interface{})["properties"].(map[string]interface{})
	assert.Equal(t, map[string]string{"type": "keyword"}, props["typeKey"])
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	ix, req := newTestIndex(t, http.StatusOK, `{"took":1,"hits":{"total":{"value":0},"max_score":null,"hits":[]}}`)

	res, err := ix.Search(context.Background(), Query{Type: "all"})
	require.NoError(t, err)
	assert.Empty(t, res.Employers)
	assert.Zero(t, res.MaxScore)
	assert.Contains(t, req.query, "size=20")

	boolQ := req.body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	assert.Contains(t, boolQ["must"].([]interface{})[0], "match_all")
	assert.Empty(t, boolQ["filter"])
}

func TestSearch_IndexNotFound(t *testing.T) {
	ix, _ := newTestIndex(t, http.StatusNotFound, `{"error":{"type":"index_not_found_exception"},"status":404}`)

	_, err := ix.Search(context.Background(), Query{Keywords: "x"})
	assert.ErrorIs(t, err, ErrIndexNotFound)
}

func TestSearch_BadRequest(t *testing.T) {
	ix, _ := newTestIndex(t, http.StatusBadRequest, `{"error":{"type":"parsing_exception"},"status":400}`)

	_, err := ix.Search(context.Background(), Query{Keywords: "x"})
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestIndexEmployer(t *testing.T) {
	ix, req := newTestIndex(t, http.StatusCreated, `{"result":"created"}`)

	err := ix.IndexEmployer(context.Background(), models.Employer{ID: "9", Name: "Acme", Role: "Analyst", Type: "FMCG"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/opportunities/_doc/9", req.path)
	assert.Contains(t, req.query, "refresh=wait_for")
	assert.Equal(t, "fmcg", req.body["typeKey"])
	assert.Equal(t, "FMCG", req.body["type"])
}

func TestDeleteEmployer_MissingIsFine(t *testing.T) {
	ix, req := newTestIndex(t, http.StatusNotFound, `{"result":"not_found"}`)

	require.NoError(t, ix.DeleteEmployer(context.Background(), "9"))
	assert.Equal(t, http.MethodDelete, req.method)
}

type esCall struct {
	method string
	path   string
	body   map[string]interface{}
}

// newRoutedIndex answers each request with the status routes gives for
// "METHOD /path", recording every call in order.
func newRoutedIndex(t *testing.T, routes map[string]int) (*Index, *[]esCall) {
	t.Helper()
	var calls []esCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := esCall{method: r.Method, path: r.URL.Path}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &c.body)
		}
		calls = append(calls, c)

		status, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			status = http.StatusInternalServerError
		}
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusBadRequest {
			_, _ = w.Write([]byte(`{"error":{"type":"resource_already_exists_exception"},"status":400}`))
			return
		}
		_, _ = w.Write([]byte(`{"acknowledged":true}`))
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewIndex(client, "opportunities"), &calls
}

func TestEnsureIndex_CreatesKeywordMapping(t *testing.T) {
	ix, calls := newRoutedIndex(t, map[string]int{
		"HEAD /opportunities": http.StatusNotFound,
		"PUT /opportunities":  http.StatusOK,
	})

	created, err := ix.EnsureIndex(context.Background())
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, *calls, 2)

	put := (*calls)[1]
	assert.Equal(t, http.MethodPut, put.method)
	props := put.body["mappings"].(map[string]interface{})["properties"].(map[string]interface{})
	assert.Equal(t, "keyword", props["typeKey"].(map[string]interface{})["type"])
}

func TestEnsureIndex_Existing(t *testing.T) {
	ix, calls := newRoutedIndex(t, map[string]int{"HEAD /opportunities": http.StatusOK})

	created, err := ix.EnsureIndex(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, *calls, 1)
}

func TestEnsureIndex_LostRace(t *testing.T) {
	ix, _ := newRoutedIndex(t, map[string]int{
		"HEAD /opportunities": http.StatusNotFound,
		"PUT /opportunities":  http.StatusBadRequest,
	})

	created, err := ix.EnsureIndex(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureIndex_ClusterError(t *testing.T) {
	ix, _ := newRoutedIndex(t, map[string]int{})

	_, err := ix.EnsureIndex(context.Background())
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestReindex(t *testing.T) {
	ix, req := newTestIndex(t, http.StatusOK, `{"took":3,"errors":false,"items":[{"index":{"status":201}},{"index":{"status":200}}]}`)

	err := ix.Reindex(context.Background(), []models.Employer{{ID: "1", Name: "Goldman Sachs"}, {ID: "2", Name: "McKinsey & Company"}})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/_bulk", req.path)
	assert.Contains(t, req.query, "refresh=wait_for")
}

func TestReindex_Rejected(t *testing.T) {
	ix, _ := newTestIndex(t, http.StatusOK, `{"took":3,"errors":true,"items":[{"index":{"status":201}},{"index":{"status":400}}]}`)

	err := ix.Reindex(context.Background(), []models.Employer{{ID: "1"}, {ID: "2"}})
	require.ErrorIs(t, err, ErrBulkRejected)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestReindex_NothingToDo(t *testing.T) {
	ix, req := newTestIndex(t, http.StatusOK, `{}`)

	require.NoError(t, ix.Reindex(context.Background(), nil))
	assert.Empty(t, req.method)
}

func TestQueryPage(t *testing.T) {
	tests := []struct {
		q                  Query
		wantFrom, wantSize int
	}{
		{Query{}, 0, 20},
		{Query{From: -5, Size: 0}, 0, 20},
		{Query{From: 40, Size: 10}, 40, 10},
		{Query{Size: 1000}, 0, 100},
	}
	for _, tt := range tests {
		from, size := tt.q.page()
		assert.Equal(t, tt.wantFrom, from)
		assert.Equal(t, tt.wantSize, size)
	}
}
