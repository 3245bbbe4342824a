package surrealql

import (
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealql.go/pkg/constants"
	"github.com/surrealdb/surrealql.go/pkg/models"
	"github.com/surrealdb/surrealql.go/pkg/schema"
	"github.com/surrealdb/surrealql.go/pkg/values"
	"github.com/surrealdb/surrealql.go/pkg/where"
)

// ReturnMode selects the RETURN clause of a DELETE statement.
type ReturnMode string

const (
	ReturnNone   ReturnMode = "NONE"
	ReturnDiff   ReturnMode = "DIFF"
	ReturnBefore ReturnMode = "BEFORE"
	ReturnAfter  ReturnMode = "AFTER"
)

// Cardinality is the expected result count of a query. It is carried for
// the caller that interprets results and never affects the query text.
type Cardinality int

const (
	CardinalityMany Cardinality = iota
	CardinalityZeroOrOne
	CardinalityOne
)

func (c Cardinality) String() string {
	switch c {
	case CardinalityMany:
		return "many"
	case CardinalityZeroOrOne:
		return "zero-or-one"
	case CardinalityOne:
		return "one"
	default:
		return fmt.Sprintf("cardinality(%d)", int(c))
	}
}

// Delete is an immutable DELETE statement under construction.
//
// The zero value is not usable; start from [Del], [DelRecord],
// [DelRecordLink], or [DelRelation]. Every configuration method returns a
// new Delete with one aspect changed and leaves the receiver intact.
type Delete struct {
	resultSchema   schema.Schema
	cardinality    Cardinality
	targets        string
	whereClause    string
	returnMode     ReturnMode
	returnFields   []string
	timeout        time.Duration
	parallel       bool
	relationDelete bool
}

// Del starts a DELETE of one or more targets.
//
// Each target is a raw expression string, a [models.Table], or a
// [models.RecordID]; passing a slice is rejected at compile time by the
// [Target] constraint, since targets must be flattened into separate
// arguments. At least one target is required.
func Del[T Target](targets ...T) (Delete, error) {
	if len(targets) == 0 {
		return Delete{}, constants.ErrNoTargets
	}

	parts := make([]string, 0, len(targets))
	for i, t := range targets {
		s, err := renderTarget(t)
		if err != nil {
			return Delete{}, fmt.Errorf("target %d: %w", i, err)
		}
		parts = append(parts, s)
	}

	return Delete{
		targets:     strings.Join(parts, ", "),
		cardinality: CardinalityMany,
		returnMode:  ReturnBefore,
	}, nil
}

// DelRecord starts a DELETE of the single record identified by table and id.
// It fails when the table name is empty.
func DelRecord(table string, id any) (Delete, error) {
	if table == "" {
		return Delete{}, fmt.Errorf("table name is empty")
	}
	rid := models.NewRecordID(table, id)
	return Delete{
		targets:     rid.String(),
		cardinality: CardinalityZeroOrOne,
		returnMode:  ReturnBefore,
	}, nil
}

// DelRecordLink starts a DELETE of the single record named by a record
// link of the form `table:id`. It fails when the link is malformed.
func DelRecordLink(link string) (Delete, error) {
	rid, err := models.ParseRecordID(link)
	if err != nil {
		return Delete{}, err
	}
	return Delete{
		targets:     rid.String(),
		cardinality: CardinalityZeroOrOne,
		returnMode:  ReturnBefore,
	}, nil
}

// DelRelation starts a DELETE of a graph edge.
//
// The target is the edge record id, or the relation table when the edge
// has no id of its own. The WHERE clause is derived from the edge
// endpoints as `in = <from> AND out = <to>` and is fixed: calling Where
// or WhereRaw on the returned value fails.
func DelRelation(rel models.Relationship) (Delete, error) {
	if rel.In.IsZero() || rel.Out.IsZero() {
		return Delete{}, constants.ErrRelationEndpoint
	}

	var target string
	switch {
	case rel.ID != nil:
		target = rel.ID.String()
	case rel.Relation != "":
		target = values.EscapeIdent(string(rel.Relation))
	default:
		return Delete{}, constants.ErrNoRelationTarget
	}

	cond, err := where.Compile(where.Predicate{
		"in":  where.Eq(rel.In),
		"out": where.Eq(rel.Out),
	})
	if err != nil {
		return Delete{}, err
	}

	return Delete{
		targets:        target,
		whereClause:    cond,
		cardinality:    CardinalityZeroOrOne,
		returnMode:     ReturnBefore,
		relationDelete: true,
	}, nil
}

// Where sets the WHERE clause from a structured predicate.
//
// It fails on a relation delete, whose filter is fixed by its endpoints.
// Calling Where again replaces the previous filter.
func (q Delete) Where(p where.Predicate) (Delete, error) {
	if q.relationDelete {
		return Delete{}, constants.ErrRelationFilter
	}
	cond, err := where.Compile(p)
	if err != nil {
		return Delete{}, err
	}
	q.whereClause = cond
	return q, nil
}

// WhereRaw sets the WHERE clause to pre-rendered condition text.
// The caller asserts that the text is injection-safe.
func (q Delete) WhereRaw(cond string) (Delete, error) {
	if q.relationDelete {
		return Delete{}, constants.ErrRelationFilter
	}
	q.whereClause = cond
	return q, nil
}

// Return sets the RETURN clause mode and discards any field subset set
// earlier with ReturnFields. The zero ReturnMode omits the clause.
func (q Delete) Return(mode ReturnMode) Delete {
	q.returnMode = mode
	q.returnFields = nil
	return q
}

// ReturnNone sets RETURN NONE.
func (q Delete) ReturnNone() Delete { return q.Return(ReturnNone) }

// ReturnDiff sets RETURN DIFF.
func (q Delete) ReturnDiff() Delete { return q.Return(ReturnDiff) }

// ReturnBefore sets RETURN BEFORE.
func (q Delete) ReturnBefore() Delete { return q.Return(ReturnBefore) }

// ReturnAfter sets RETURN AFTER.
func (q Delete) ReturnAfter() Delete { return q.Return(ReturnAfter) }

// ReturnFields makes the statement return the named fields of the
// affected records. Order is preserved and duplicates are kept. Calling
// it with no fields clears the RETURN clause.
//
// The field subset takes the place of any return mode set earlier; the
// fields state is carried by the field list itself, so no ReturnMode
// value a caller could pass to Return can collide with it.
func (q Delete) ReturnFields(fields ...string) Delete {
	if len(fields) == 0 {
		return q.Return("")
	}
	q.returnMode = ""
	q.returnFields = append([]string(nil), fields...)
	return q
}

// Timeout sets the TIMEOUT clause. A zero duration means no timeout and
// clears any timeout set earlier; the clause is then omitted.
func (q Delete) Timeout(d time.Duration) Delete {
	q.timeout = d
	return q
}

// Parallel appends PARALLEL to the statement.
func (q Delete) Parallel() Delete {
	q.parallel = true
	return q
}

// WithSchema attaches a result-shape contract to the statement. The
// schema never affects the rendered text; it is carried for whoever
// interprets the results.
func (q Delete) WithSchema(s schema.Schema) Delete {
	q.resultSchema = s
	return q
}

// WithShape is shorthand for WithSchema(schema.Object(sh)).
func (q Delete) WithShape(sh schema.Shape) Delete {
	return q.WithSchema(schema.Object(sh))
}

// WithAnySchema attaches a permissive schema that accepts any result.
func (q Delete) WithAnySchema() Delete {
	return q.WithSchema(schema.AnySchema())
}

// Schema returns the attached result schema, or nil.
func (q Delete) Schema() schema.Schema { return q.resultSchema }

// Cardinality returns the declared expected result count.
func (q Delete) Cardinality() Cardinality { return q.cardinality }

// Targets returns the rendered target expression.
func (q Delete) Targets() string { return q.targets }

// Render produces the SurrealQL statement text.
//
// Clauses are emitted in the only order the grammar accepts: targets,
// WHERE, RETURN, TIMEOUT, PARALLEL. Rendering fails when the statement
// has no targets, which can only happen for a zero Delete value.
func (q Delete) Render() (string, error) {
	if q.targets == "" {
		return "", constants.ErrNoTargets
	}

	sql := "DELETE " + q.targets

	if q.whereClause != "" {
		sql += " WHERE " + q.whereClause
	}

	switch {
	case len(q.returnFields) > 0:
		fields := make([]string, len(q.returnFields))
		for i, f := range q.returnFields {
			fields[i] = values.EscapeIdent(f)
		}
		sql += " RETURN " + strings.Join(fields, ", ")
	case q.returnMode != "":
		sql += " RETURN " + string(q.returnMode)
	}

	if q.timeout != 0 {
		sql += " TIMEOUT " + models.FormatDuration(q.timeout)
	}

	if q.parallel {
		sql += " PARALLEL"
	}

	if l := debugLogger(); l != nil {
		l.Debug("rendered query", "query", sql)
	}

	return sql, nil
}

// String returns the rendered statement, or an empty string when the
// statement is not renderable.
func (q Delete) String() string {
	sql, _ := q.Render()
	return sql
}
