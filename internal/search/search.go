// Package search indexes employers in Elasticsearch and runs opportunity
// searches against them.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"placement-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var (
	ErrIndexNotFound = errors.New("index not found")
	ErrQueryFailed   = errors.New("search query failed")
	ErrBulkRejected  = errors.New("bulk index rejected documents")
)

type Result struct {
	Employers []models.Employer `json:"employers"`
	TotalHits int64             `json:"totalHits"`
	MaxScore  float64           `json:"maxScore"`
	Took      int64             `json:"took"` // milliseconds, as reported by the cluster
}

type Index struct {
	client *elasticsearch.Client
	name   string
}

func NewIndex(client *elasticsearch.Client, name string) *Index {
	return &Index{client: client, name: name}
}

func (ix *Index) Name() string { return ix.name }

// indexMapping keeps typeKey a keyword so the type filter compares whole
// values ("investment bank") instead of analyzed tokens.
var indexMapping = map[string]interface{}{
	"mappings": map[string]interface{}{
		"properties": map[string]interface{}{
			"id":          map[string]string{"type": "keyword"},
			"name":        map[string]string{"type": "text"},
			"role":        map[string]string{"type": "text"},
			"description": map[string]string{"type": "text"},
			"location":    map[string]string{"type": "text"},
			"type":        map[string]string{"type": "keyword"},
			"typeKey":     map[string]string{"type": "keyword"},
			"deadline":    map[string]string{"type": "keyword"},
			"package":     map[string]string{"type": "keyword"},
			"eligibility": map[string]string{"type": "text"},
			"logo":        map[string]string{"type": "keyword"},
		},
	},
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
// It reports whether it created the index.
func (ix *Index) EnsureIndex(ctx context.Context) (bool, error) {
	exists := esapi.IndicesExistsRequest{Index: []string{ix.name}}
	res, err := exists.Do(ctx, ix.client)
	if err != nil {
		return false, fmt.Errorf("check index %s: %w", ix.name, err)
	}
	res.Body.Close()
	switch res.StatusCode {
	case http.StatusOK:
		return false, nil
	case http.StatusNotFound:
	default:
		return false, fmt.Errorf("%w: check index %s: %s", ErrQueryFailed, ix.name, res.Status())
	}

	body, err := json.Marshal(indexMapping)
	if err != nil {
		return false, fmt.Errorf("marshal mapping: %w", err)
	}
	create := esapi.IndicesCreateRequest{Index: ix.name, Body: bytes.NewReader(body)}
	res, err = create.Do(ctx, ix.client)
	if err != nil {
		return false, fmt.Errorf("create index %s: %w", ix.name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg := res.String()
		// another worker-manager won the race
		if strings.Contains(msg, "resource_already_exists_exception") {
			return false, nil
		}
		return false, fmt.Errorf("%w: create index %s: %s", ErrQueryFailed, ix.name, msg)
	}
	return true, nil
}

// document is the indexed shape. TypeKey is the lower-cased type that term
// filters run against.
type document struct {
	models.Employer
	TypeKey string `json:"typeKey"`
}

// IndexEmployer upserts e and waits for the next refresh, so a search right
// after sees it.
func (ix *Index) IndexEmployer(ctx context.Context, e models.Employer) error {
	doc := document{Employer: e, TypeKey: strings.ToLower(e.Type)}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal employer: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      ix.name,
		DocumentID: e.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "wait_for",
	}
	res, err := req.Do(ctx, ix.client)
	if err != nil {
		return fmt.Errorf("index employer %s: %w", e.ID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError(res)
	}
	return nil
}

// DeleteEmployer removes e from the index. A missing document is not an error.
func (ix *Index) DeleteEmployer(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{Index: ix.name, DocumentID: id, Refresh: "wait_for"}
	res, err := req.Do(ctx, ix.client)
	if err != nil {
		return fmt.Errorf("delete employer %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return responseError(res)
	}
	return nil
}

// Reindex bulk-loads employers into the index. It is used at startup so the
// index follows whatever the catalog holds.
func (ix *Index) Reindex(ctx context.Context, employers []models.Employer) error {
	if len(employers) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range employers {
		meta := map[string]interface{}{
			"index": map[string]string{"_index": ix.name, "_id": e.ID},
		}
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("encode bulk meta: %w", err)
		}
		if err := enc.Encode(document{Employer: e, TypeKey: strings.ToLower(e.Type)}); err != nil {
			return fmt.Errorf("encode employer %s: %w", e.ID, err)
		}
	}

	req := esapi.BulkRequest{Body: &buf, Refresh: "wait_for"}
	res, err := req.Do(ctx, ix.client)
	if err != nil {
		return fmt.Errorf("bulk index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError(res)
	}

	var out struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode bulk response: %w", err)
	}
	if !out.Errors {
		return nil
	}

	rejected := 0
	for _, item := range out.Items {
		for _, op := range item {
			if op.Status >= 300 {
				rejected++
			}
		}
	}
	return fmt.Errorf("%w: %d of %d", ErrBulkRejected, rejected, len(employers))
}

type searchResponse struct {
	Took int64 `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		MaxScore *float64 `json:"max_score"`
		Hits     []struct {
			Source document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (ix *Index) Search(ctx context.Context, q Query) (*Result, error) {
	body, err := json.Marshal(q.body())
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}
	from, size := q.page()

	req := esapi.SearchRequest{
		Index: []string{ix.name},
		Body:  bytes.NewReader(body),
		From:  &from,
		Size:  &size,
	}
	res, err := req.Do(ctx, ix.client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, responseError(res)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrQueryFailed, err)
	}

	out := &Result{
		Employers: make([]models.Employer, 0, len(sr.Hits.Hits)),
		TotalHits: sr.Hits.Total.Value,
		Took:      sr.Took,
	}
	if sr.Hits.MaxScore != nil {
		out.MaxScore = *sr.Hits.MaxScore
	}
	for _, h := range sr.Hits.Hits {
		out.Employers = append(out.Employers, h.Source.Employer)
	}
	return out, nil
}

func responseError(res *esapi.Response) error {
	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrIndexNotFound, res.String())
	}
	return fmt.Errorf("%w: %s", ErrQueryFailed, res.String())
}
