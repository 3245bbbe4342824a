package schema

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ValidateCBOR decodes a CBOR-encoded result payload and validates it
// against s. It is a convenience for callers that receive raw payloads
// from a CBOR-speaking transport.
func ValidateCBOR(s Schema, data []byte) error {
	if s == nil {
		return nil
	}
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cannot decode result payload: %w", err)
	}
	return s.Validate(v)
}
