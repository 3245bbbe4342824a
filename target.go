package surrealql

import (
	"fmt"

	"github.com/surrealdb/surrealql.go/pkg/models"
	"github.com/surrealdb/surrealql.go/pkg/values"
)

// Target is the set of types accepted as DELETE targets.
//
// Slices are deliberately excluded: a target list must be passed as
// separate arguments, never as a single collection, and the constraint
// turns that mistake into a compile error.
type Target interface {
	string | models.Table | models.RecordID | *models.RecordID
}

// renderTarget converts a single target to its textual form. Strings are
// raw SurrealQL expressions and pass through verbatim; tables are escaped
// identifiers; record ids render as `table:id`.
func renderTarget(t any) (string, error) {
	switch v := t.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("target expression is empty")
		}
		return v, nil
	case models.Table:
		if v == "" {
			return "", fmt.Errorf("table name is empty")
		}
		return values.EscapeIdent(string(v)), nil
	case models.RecordID:
		return v.String(), nil
	case *models.RecordID:
		if v == nil {
			return "", fmt.Errorf("record id is nil")
		}
		return v.String(), nil
	default:
		// Unreachable while renderTarget is only called with Target types.
		return "", fmt.Errorf("unsupported target type %T", t)
	}
}
