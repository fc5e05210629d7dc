package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema describes the job variables a worker accepts. Process variables
// outside Properties are always allowed since Zeebe hands a job the whole scope.
type JSONSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type Property struct {
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Minimum     *float64            `json:"minimum,omitempty"`
	Maximum     *float64            `json:"maximum,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Pattern     string              `json:"pattern,omitempty"`
	MinLength   *int                `json:"minLength,omitempty"`
	MaxLength   *int                `json:"maxLength,omitempty"`
	MinItems    *int                `json:"minItems,omitempty"`
	MaxItems    *int                `json:"maxItems,omitempty"`
	Items       *Property           `json:"items,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateInput checks input against schema with gojsonschema.
func ValidateInput(input map[string]interface{}, schema JSONSchema) *ValidationResult {
	if input == nil {
		input = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(input),
	)
	if err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "(root)", Message: err.Error(), Code: "SCHEMA_ERROR"}},
		}
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, re := range result.Errors() {
		field := re.Field()
		// Missing required properties are reported against the parent.
		if re.Type() == "required" {
			if prop, ok := re.Details()["property"].(string); ok {
				field = joinField(field, prop)
			}
		}
		out.Errors = append(out.Errors, ValidationError{
			Field:   field,
			Message: re.Description(),
			Code:    strings.ToUpper(re.Type()),
		})
	}
	sort.SliceStable(out.Errors, func(i, j int) bool { return out.Errors[i].Field < out.Errors[j].Field })
	return out
}

func joinField(parent, child string) string {
	if parent == "" || parent == "(root)" {
		return child
	}
	return parent + "." + child
}

func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// Summary joins all messages into one line for error details.
func (vr *ValidationResult) Summary() string {
	return strings.Join(vr.GetErrorMessages(), "; ")
}

func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }
