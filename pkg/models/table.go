package models

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Table is a SurrealDB table name.
//
// Using Table instead of a plain string tells the query writer that the
// value is a table identifier and must be escaped as such, never treated
// as a raw SurrealQL expression.
type Table string

func (t Table) String() string {
	return string(t)
}

func (t Table) MarshalCBOR() ([]byte, error) {
	return surrealEncoder().Marshal(cbor.Tag{
		Number:  TagTable,
		Content: string(t),
	})
}

func (t *Table) UnmarshalCBOR(data []byte) error {
	var name string
	if err := surrealDecoder().Unmarshal(data, &name); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("invalid table payload: empty table name")
	}
	*t = Table(name)
	return nil
}
