package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Struct runs `validate` tags on v and flattens failures into one error.
func Struct(v interface{}) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
