// Package where compiles structured filter predicates into SurrealQL
// WHERE-clause text.
//
// A Predicate maps field names to conditions built with the operator
// constructors (Eq, Gt, In, ...). Compile renders the conditions joined
// with AND, with fields in sorted order so that identical predicates
// always compile to identical text. Operand values are rendered through
// the values package and can never escape their quoting.
package where

import (
	"fmt"
	"sort"
	"strings"

	"github.com/surrealdb/surrealql.go/pkg/values"
)

// Cond is a single operator and operand applied to a field.
type Cond struct {
	op      string
	operand any
	unary   bool
}

// Predicate maps field names to the condition each field must satisfy.
type Predicate map[string]Cond

// Eq matches fields equal to v.
func Eq(v any) Cond { return Cond{op: "=", operand: v} }

// Neq matches fields not equal to v.
func Neq(v any) Cond { return Cond{op: "!=", operand: v} }

// Gt matches fields greater than v.
func Gt(v any) Cond { return Cond{op: ">", operand: v} }

// Gte matches fields greater than or equal to v.
func Gte(v any) Cond { return Cond{op: ">=", operand: v} }

// Lt matches fields less than v.
func Lt(v any) Cond { return Cond{op: "<", operand: v} }

// Lte matches fields less than or equal to v.
func Lte(v any) Cond { return Cond{op: "<=", operand: v} }

// In matches fields whose value is inside the given candidates.
func In(vs ...any) Cond { return Cond{op: "IN", operand: vs} }

// NotIn matches fields whose value is not inside the given candidates.
func NotIn(vs ...any) Cond { return Cond{op: "NOT IN", operand: vs} }

// Contains matches array fields containing v.
func Contains(v any) Cond { return Cond{op: "CONTAINS", operand: v} }

// Inside matches fields whose value lies inside the collection v.
func Inside(v any) Cond { return Cond{op: "INSIDE", operand: v} }

// IsNull matches fields that are NULL.
func IsNull() Cond { return Cond{op: "IS NULL", unary: true} }

// IsNotNull matches fields that are not NULL.
func IsNotNull() Cond { return Cond{op: "IS NOT NULL", unary: true} }

// Compile renders the predicate as WHERE-clause text without the WHERE
// keyword. An empty predicate is an error: a DELETE without a filter must
// omit the WHERE clause entirely rather than render an empty one.
func Compile(p Predicate) (string, error) {
	if len(p) == 0 {
		return "", fmt.Errorf("cannot compile an empty predicate")
	}

	fields := make([]string, 0, len(p))
	for f := range p {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		cond := p[f]
		if cond.op == "" {
			return "", fmt.Errorf("field %q has no condition: use an operator constructor such as where.Eq", f)
		}
		if cond.unary {
			parts = append(parts, values.EscapeIdent(f)+" "+cond.op)
			continue
		}
		operand, err := values.Render(cond.operand)
		if err != nil {
			return "", fmt.Errorf("field %q: %w", f, err)
		}
		parts = append(parts, values.EscapeIdent(f)+" "+cond.op+" "+operand)
	}

	return strings.Join(parts, " AND "), nil
}
