package queryelasticsearch

import "placement-workers/internal/models"

type Input struct {
	Keywords   string     `json:"keywords,omitempty"`
	Type       string     `json:"type,omitempty"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	From int `json:"from"`
	Size int `json:"size"`
}

type Output struct {
	Data      []models.Employer `json:"data"`
	TotalHits int64             `json:"totalHits"`
	MaxScore  float64           `json:"maxScore"`
	Took      int64             `json:"took"` // milliseconds
}
