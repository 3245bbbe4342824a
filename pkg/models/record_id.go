package models

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// RecordID is a SurrealDB record identifier, a pair of a table name and an
// identifier within that table. The textual form is `table:id`.
type RecordID struct {
	Table string
	ID    any
}

// NewRecordID returns a RecordID for the given table and identifier.
func NewRecordID(table string, id any) RecordID {
	return RecordID{Table: table, ID: id}
}

// ParseRecordID parses a record link of the form `table:id`.
// It returns an error if the link has no table part or no id part.
func ParseRecordID(link string) (RecordID, error) {
	table, id, found := strings.Cut(link, ":")
	if !found {
		return RecordID{}, fmt.Errorf("invalid record link %q: expected format is table:id", link)
	}
	if table == "" || id == "" {
		return RecordID{}, fmt.Errorf("invalid record link %q: table and id must both be non-empty", link)
	}
	return RecordID{Table: table, ID: id}, nil
}

// IsZero reports whether the RecordID is the zero value.
func (r RecordID) IsZero() bool {
	return r.Table == "" && r.ID == nil
}

// String returns the `table:id` form of the record id.
//
// String ids that contain characters outside [a-zA-Z0-9_], or that consist
// solely of digits and underscores, are wrapped in ⟨⟩ following the
// server's record-id escaping rules, so that e.g. `person:1000` (a numeric
// string id) is distinguishable from `person:1000` (an integer id).
func (r RecordID) String() string {
	id := fmt.Sprintf("%v", r.ID)
	if s, ok := r.ID.(string); ok && recordIDNeedsEscaping(s) {
		id = "⟨" + escapeString(s, '⟩') + "⟩"
	}
	return r.Table + ":" + id
}

// escapeString escapes the delimiter and backslash characters, so that
// neither a literal delimiter nor a trailing backslash can terminate the
// bracketed form early or swallow the closing bracket.
func escapeString(s string, delimiter rune) string {
	var b strings.Builder
	for _, ch := range s {
		if ch == delimiter || ch == '\\' {
			b.WriteRune('\\')
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// SurrealString returns the record id as a SurrealQL record literal, r'table:id'.
func (r RecordID) SurrealString() string {
	return "r'" + r.String() + "'"
}

func (r RecordID) MarshalCBOR() ([]byte, error) {
	return surrealEncoder().Marshal(cbor.Tag{
		Number:  TagRecordID,
		Content: []any{r.Table, r.ID},
	})
}

func (r *RecordID) UnmarshalCBOR(data []byte) error {
	var parts []any
	if err := surrealDecoder().Unmarshal(data, &parts); err != nil {
		return err
	}
	expected := 2
	if len(parts) != expected {
		return fmt.Errorf("invalid record id payload: expected %d elements, got %d", expected, len(parts))
	}
	table, ok := parts[0].(string)
	if !ok {
		return fmt.Errorf("invalid record id payload: table is %T, not a string", parts[0])
	}
	r.Table = table
	r.ID = parts[1]
	return nil
}

func isASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isASCIIAlphanumeric(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || isASCIIDigit(ch)
}

// recordIDNeedsEscaping reports whether a string id must be wrapped in ⟨⟩:
// either it contains a character outside [a-zA-Z0-9_], or it would be
// ambiguous with a numeric id because it is all digits and underscores.
func recordIDNeedsEscaping(s string) bool {
	if s == "" {
		return true
	}
	digitsOnly := true
	for _, ch := range s {
		if !isASCIIAlphanumeric(ch) && ch != '_' {
			return true
		}
		if !isASCIIDigit(ch) && ch != '_' {
			digitsOnly = false
		}
	}
	return digitsOnly
}
