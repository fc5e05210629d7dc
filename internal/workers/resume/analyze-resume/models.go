package analyzeresume

import "placement-workers/internal/scoring/resume"

type Input struct {
	FileName string `json:"fileName"`
	Profile  string `json:"profile,omitempty"`
}

type Output struct {
	FileName string `json:"fileName"`
	resume.Result
}
