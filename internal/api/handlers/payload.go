package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/konekte/resourcehub/backend/internal/application/services"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
)

const maxBodyBytes = 1 << 20

var errInvalidPayload = errors.New("request body must be a JSON object")

// payload keeps each top-level field raw so absent, null and typed values
// can be told apart.
type payload map[string]json.RawMessage

func decodePayload(w http.ResponseWriter, r *http.Request) (payload, error) {
	var p payload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidPayload, err)
	}
	if p == nil {
		return nil, errInvalidPayload
	}
	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// str reads a string field. null reads as a set empty string, so required
// fields fail their own validator.
func (p payload) str(field string) (services.Optional[string], error) {
	raw, ok := p[field]
	if !ok {
		return services.Optional[string]{}, nil
	}
	if isNull(raw) {
		return services.Some(""), nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return services.Optional[string]{}, apperrors.NewValidationError(field, field+" must be a string")
	}
	return services.Some(value), nil
}

// nullableStr reads an optional string field where null clears the value.
func (p payload) nullableStr(field string) (services.Optional[*string], error) {
	raw, ok := p[field]
	if !ok {
		return services.Optional[*string]{}, nil
	}
	if isNull(raw) {
		return services.Some[*string](nil), nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return services.Optional[*string]{}, apperrors.NewValidationError(field, field+" must be a string")
	}
	return services.Some(&value), nil
}

// value reads a field without type coercion; numbers stay json.Number.
func (p payload) value(field string) (services.Optional[any], error) {
	raw, ok := p[field]
	if !ok {
		return services.Optional[any]{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return services.Optional[any]{}, apperrors.NewValidationError(field, "invalid "+field)
	}
	return services.Some(value), nil
}
