package queries

import (
	"context"
	"errors"
	"fmt"

	"placement-workers/internal/catalog"
	"placement-workers/internal/models"
)

var (
	ErrMissingParam     = errors.New("missing required parameter")
	ErrInvalidParam     = errors.New("invalid parameter")
	ErrUnknownQueryType = errors.New("unknown query type")
)

// QueryFunc returns: data, rowCount, executionTime (ms), error
type QueryFunc func(ctx context.Context, repo catalog.Repository, params map[string]interface{}) (interface{}, int, int64, error)

var Registry = map[models.QueryType]QueryFunc{
	models.QueryTypeEmployerList:      EmployerList,
	models.QueryTypeEmployerDetails:   EmployerDetails,
	models.QueryTypeUpcomingDeadlines: UpcomingDeadlines,
}

func Execute(ctx context.Context, repo catalog.Repository, queryType models.QueryType, params map[string]interface{}) (interface{}, int, int64, error) {
	fn, exists := Registry[queryType]
	if !exists {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrUnknownQueryType, queryType)
	}
	return fn(ctx, repo, params)
}
