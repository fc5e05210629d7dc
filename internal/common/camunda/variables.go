package camunda

import (
	"encoding/json"
	"fmt"

	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
)

// DecodeVariables checks the job's variables against schema, then unmarshals
// them into out. Both failures come back as VALIDATION_FAILED.
func DecodeVariables(job entities.Job, schema validation.JSONSchema, out interface{}) error {
	vars, err := job.GetVariablesAsMap()
	if err != nil {
		return errors.NewValidationFailedError(fmt.Sprintf("parse variables: %v", err))
	}

	if res := validation.ValidateInput(vars, schema); !res.Valid {
		return errors.NewValidationFailedError(res.Summary())
	}

	if err := json.Unmarshal([]byte(job.Variables), out); err != nil {
		return errors.NewValidationFailedError(fmt.Sprintf("decode variables: %v", err))
	}
	return nil
}
