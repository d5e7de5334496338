package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"sportapp/pkg/e"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads one JSON value from the request body. A missing body or a
// JSON null yields the zero value when allowEmpty is set and a ValidationError
// otherwise.
func DecodeJSON[T any](r *http.Request, allowEmpty bool) (T, error) {
	var (
		zero T
		v    *T
	)

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			if allowEmpty {
				return zero, nil
			}
			return zero, e.NewValidationError([]string{"body"}, "field required")
		}
		return zero, e.NewValidationError([]string{"body"}, "invalid JSON")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return zero, e.NewValidationError([]string{"body"}, "unexpected data after JSON value")
	}
	if v == nil {
		if allowEmpty {
			return zero, nil
		}
		return zero, e.NewValidationError([]string{"body"}, "field required")
	}
	return *v, nil
}
