// Package schema carries result-shape contracts alongside written queries.
//
// A Schema attached to a query never affects the query text; it exists so
// that whoever executes the query can validate the result payload against
// the shape the writer declared.
package schema

import (
	"fmt"
	"time"

	"github.com/surrealdb/surrealql.go/pkg/models"
)

// Schema validates a decoded result value.
type Schema interface {
	Validate(v any) error
}

// Kind is the expected type of a single field in an object shape.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindDatetime
	KindRecord
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime"
	case KindRecord:
		return "record"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Shape maps field names to the kind each field must have.
type Shape map[string]Kind

type anySchema struct{}

func (anySchema) Validate(any) error { return nil }

// AnySchema returns a permissive schema that accepts every value.
func AnySchema() Schema { return anySchema{} }

type objectSchema struct {
	shape Shape
}

// Object returns a schema that validates a map-shaped value against the
// given field shape. Fields present in the value but absent from the
// shape are ignored; fields in the shape must be present and of the
// declared kind.
func Object(shape Shape) Schema {
	return objectSchema{shape: shape}
}

func (s objectSchema) Validate(v any) error {
	obj, err := asObject(v)
	if err != nil {
		return err
	}
	for field, kind := range s.shape {
		fv, ok := obj[field]
		if !ok {
			return fmt.Errorf("result is missing field %q", field)
		}
		if err := validateKind(field, kind, fv); err != nil {
			return err
		}
	}
	return nil
}

// asObject normalizes the map types CBOR and JSON decoders produce.
func asObject(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("result has non-string key %v", k)
			}
			out[ks] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("result is %T, not an object", v)
	}
}

func validateKind(field string, kind Kind, v any) error {
	ok := false
	switch kind {
	case KindAny:
		ok = true
	case KindString:
		_, ok = v.(string)
	case KindInt:
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			ok = true
		}
	case KindFloat:
		switch v.(type) {
		case float32, float64:
			ok = true
		}
	case KindBool:
		_, ok = v.(bool)
	case KindDatetime:
		_, ok = v.(time.Time)
	case KindRecord:
		switch rv := v.(type) {
		case models.RecordID, *models.RecordID:
			ok = true
		case string:
			_, err := models.ParseRecordID(rv)
			ok = err == nil
		}
	case KindArray:
		_, ok = v.([]any)
	case KindObject:
		_, err := asObject(v)
		ok = err == nil
	}
	if !ok {
		return fmt.Errorf("result field %q is %T, want %s", field, v, kind)
	}
	return nil
}
