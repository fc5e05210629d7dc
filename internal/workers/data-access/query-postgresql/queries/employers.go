package queries

import (
	"context"
	"fmt"
	"time"

	"placement-workers/internal/catalog"
	"placement-workers/internal/models"
)

func EmployerList(ctx context.Context, repo catalog.Repository, params map[string]interface{}) (interface{}, int, int64, error) {
	start := time.Now()

	var f catalog.Filter
	if filters, ok := params["filters"].(map[string]interface{}); ok {
		f.Search, _ = filters["search"].(string)
		f.Type, _ = filters["type"].(string)
	}

	employers, err := repo.List(ctx, f)
	if err != nil {
		return nil, 0, 0, err
	}
	return employers, len(employers), time.Since(start).Milliseconds(), nil
}

func EmployerDetails(ctx context.Context, repo catalog.Repository, params map[string]interface{}) (interface{}, int, int64, error) {
	employerID, ok := params["employerId"].(string)
	if !ok || employerID == "" {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()
	e, err := repo.Get(ctx, employerID)
	if err != nil {
		return nil, 0, 0, err
	}
	return e, 1, time.Since(start).Milliseconds(), nil
}

// UpcomingDeadlines lists employers whose deadline is still ahead, soonest
// first. "asOf" (YYYY-MM-DD) pins the reference date and "limit" caps the rows.
func UpcomingDeadlines(ctx context.Context, repo catalog.Repository, params map[string]interface{}) (interface{}, int, int64, error) {
	start := time.Now()

	now := start
	if asOf, ok := params["asOf"].(string); ok && asOf != "" {
		t, err := time.Parse(models.DateLayout, asOf)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: asOf %q", ErrInvalidParam, asOf)
		}
		now = t
	}
	limit, _ := params["limit"].(int)

	employers, err := repo.List(ctx, catalog.Filter{})
	if err != nil {
		return nil, 0, 0, err
	}
	deadlines := catalog.UpcomingDeadlines(employers, now, limit)
	return deadlines, len(deadlines), time.Since(start).Milliseconds(), nil
}
