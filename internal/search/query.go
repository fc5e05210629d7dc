package search

import "strings"

const (
	defaultSize = 20
	maxSize     = 100
)

// Query is a keyword search over the opportunity index.
type Query struct {
	Keywords string `json:"keywords,omitempty"`
	Type     string `json:"type,omitempty"`
	From     int    `json:"from,omitempty"`
	Size     int    `json:"size,omitempty"`
}

// page returns From and Size clamped to what the index accepts.
func (q Query) page() (from, size int) {
	from = q.From
	if from < 0 {
		from = 0
	}
	size = q.Size
	if size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return from, size
}

// body builds the bool query: keywords must match, type only filters.
func (q Query) body() map[string]interface{} {
	must := []interface{}{}
	filter := []interface{}{}

	if kw := strings.TrimSpace(q.Keywords); kw != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  kw,
				"fields": []string{"name^3", "role^2", "description", "location"},
				"type":   "best_fields",
			},
		})
	} else {
		must = append(must, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	if t := strings.TrimSpace(q.Type); t != "" && !strings.EqualFold(t, "all") {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"typeKey": strings.ToLower(t)},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   must,
				"filter": filter,
			},
		},
	}
}
