// Package validation is the single gate every payload passes when it crosses a
// boundary: inbound request bodies are decoded and checked by DecodePayload,
// outbound views are checked by Struct. A value that made it through is trusted
// by every layer below.
//
// Two failure reasons are reported, and they are never conflated:
//   - errors.MissingProperty: a required field is absent, null or empty
//   - errors.WrongType: a field is present but has the wrong JSON kind
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so errors match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// LimitBody caps the number of bytes DecodePayload will read from r.Body.
func LimitBody(w http.ResponseWriter, r *http.Request, maxSize int64) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
}

// DecodePayload decodes a JSON object into T and validates it.
// An empty body is treated as an empty object. When a payload both misses a
// required property and has a wrongly typed one, the missing property wins.
// A property counts as missing when it is absent, null or an empty string;
// any other value that failed to fit its field is a wrong type.
func DecodePayload[T any](r io.Reader, entity string) (T, error) {
	var payload T

	data, err := io.ReadAll(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return payload, fmt.Errorf("%w: request body exceeds %d bytes", ErrPayloadTooLarge, maxErr.Limit)
		}
		return payload, fmt.Errorf("failed to read body: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return payload, internal_errors.BadRequest("Body is invalid json")
		}
	}
	// the decoder stops after the first value, anything behind it is garbage
	if len(bytes.TrimSpace(data[dec.InputOffset():])) > 0 {
		return payload, internal_errors.BadRequest("Body is invalid json")
	}

	// raw stays nil for a non-object body, every property is then missing
	var raw map[string]json.RawMessage
	_ = json.Unmarshal(data, &raw)

	var fieldErrs validator.ValidationErrors
	if err := validate.Struct(payload); err != nil {
		if !errors.As(err, &fieldErrs) {
			return payload, err
		}
	}

	var wrongType string
	for _, fe := range fieldErrs {
		reason := reasonFor(fe)
		if reason == internal_errors.MissingProperty && present(raw, fe.Field()) {
			reason = internal_errors.WrongType
		}
		if reason == internal_errors.MissingProperty {
			return payload, &internal_errors.ValidationError{Entity: entity, Field: fe.Field(), Reason: reason}
		}
		if wrongType == "" {
			wrongType = fe.Field()
		}
	}
	if wrongType == "" {
		wrongType = firstMistyped(payload, raw)
	}
	if wrongType != "" {
		return payload, &internal_errors.ValidationError{Entity: entity, Field: wrongType, Reason: internal_errors.WrongType}
	}
	return payload, nil
}

// present reports whether the body carried a usable value for field.
func present(raw map[string]json.RawMessage, field string) bool {
	v, ok := raw[field]
	if !ok {
		return false
	}
	switch string(v) {
	case "null", `""`:
		return false
	}
	return true
}

// firstMistyped finds a property without a validate rule whose value does not fit its field.
func firstMistyped(payload any, raw map[string]json.RawMessage) string {
	t := reflect.TypeOf(payload)
	if t.Kind() != reflect.Struct {
		return ""
	}
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = fld.Name
		}
		v, ok := raw[name]
		if !ok || string(v) == "null" {
			continue
		}
		if err := json.Unmarshal(v, reflect.New(fld.Type).Interface()); err != nil {
			return name
		}
	}
	return ""
}

// Struct validates an already typed value, typically an outbound view built from storage rows.
func Struct(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &internal_errors.ValidationError{Entity: entity, Field: fe.Field(), Reason: reasonFor(fe)}
}

func reasonFor(fe validator.FieldError) internal_errors.ValidationReason {
	if fe.Tag() == "required" {
		return internal_errors.MissingProperty
	}
	return internal_errors.WrongType
}
