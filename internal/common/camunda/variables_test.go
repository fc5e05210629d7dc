package camunda

import (
	"testing"

	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobWith(vars string) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 1, Type: "test", Retries: 3, Variables: vars}}
}

var testSchema = validation.JSONSchema{
	Type:     "object",
	Required: []string{"sessionId"},
	Properties: map[string]validation.Property{
		"sessionId": {Type: "string", MinLength: validation.Int(1)},
		"skills":    {Type: "array", Items: &validation.Property{Type: "string"}},
	},
}

type testInput struct {
	SessionID string   `json:"sessionId"`
	Skills    []string `json:"skills"`
}

func TestDecodeVariables(t *testing.T) {
	var in testInput
	err := DecodeVariables(jobWith(`{"sessionId":"s1","skills":["Excel"],"unrelated":true}`), testSchema, &in)
	require.NoError(t, err)
	assert.Equal(t, "s1", in.SessionID)
	assert.Equal(t, []string{"Excel"}, in.Skills)
}

func TestDecodeVariables_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing required": `{"skills":[]}`,
		"wrong type":       `{"sessionId":"s1","skills":"Excel"}`,
		"not json":         `{`,
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			var in testInput
			err := DecodeVariables(jobWith(vars), testSchema, &in)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeValidationFailed, errors.Normalize(err).Code)
		})
	}
}
