package predictcareerpath

import "placement-workers/internal/scoring/careerpath"

type Input struct {
	Skills    []string `json:"skills"`
	Projects  []string `json:"projects"`
	Interests []string `json:"interests"`
}

type Output struct {
	Predictions []careerpath.Result `json:"predictions"`
	TopPathID   string              `json:"topPathId"`
	TopMatch    int                 `json:"topMatch"`
}
