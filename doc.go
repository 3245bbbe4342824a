// Package surrealql writes SurrealQL DELETE statements.
//
// The writer is an immutable value: every configuration method returns a
// new [Delete] and never modifies its receiver, so any intermediate value
// can be held, branched from, and rendered independently, including from
// concurrent goroutines.
//
// A query is started with one of three factories: [Del] for bulk deletes
// of one or more targets, [DelRecord] (or [DelRecordLink]) for a single
// identified record, and [DelRelation] for a graph edge, which derives
// its WHERE clause from the edge endpoints and rejects any further manual
// filtering. Configuration methods are chained off the returned value and
// [Delete.Render] produces the final statement text:
//
//	q, err := surrealql.Del("person")
//	if err != nil {
//		return err
//	}
//	q, err = q.Where(where.Predicate{"name": where.Eq("Alice")})
//	if err != nil {
//		return err
//	}
//	sql, err := q.Render()
//	// DELETE person WHERE name = 'Alice' RETURN BEFORE
//
// String targets are treated as raw SurrealQL expressions and passed
// through verbatim. Use [models.Table] and [models.RecordID] values, or
// structured predicates from the where package, when the input is not
// trusted.
//
// The writer only produces text. Executing the statement, managing
// connections, and decoding results belong to whatever client consumes
// the rendered string; the attached [schema.Schema] and declared
// [Cardinality] are carried for that consumer and never affect the text.
package surrealql
