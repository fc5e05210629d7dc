package querypostgresql

import "placement-workers/internal/models"

type Input struct {
	QueryType  string                 `json:"queryType"`
	EmployerID string                 `json:"employerId,omitempty"`
	Filters    map[string]interface{} `json:"filters,omitempty"`
	AsOf       string                 `json:"asOf,omitempty"`
	Limit      int                    `json:"limit,omitempty"`
}

type Output struct {
	Data               interface{} `json:"data"`
	RowCount           int         `json:"rowCount"`
	QueryExecutionTime int64       `json:"queryExecutionTime"` // milliseconds
}

type QueryType = models.QueryType

var (
	QueryTypeEmployerList      = models.QueryTypeEmployerList
	QueryTypeEmployerDetails   = models.QueryTypeEmployerDetails
	QueryTypeUpcomingDeadlines = models.QueryTypeUpcomingDeadlines
)
