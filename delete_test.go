package surrealql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealql.go/pkg/constants"
	"github.com/surrealdb/surrealql.go/pkg/models"
	"github.com/surrealdb/surrealql.go/pkg/where"
)

func mustDel(t *testing.T, targets ...string) Delete {
	t.Helper()
	q, err := Del(targets...)
	require.NoError(t, err)
	return q
}

func TestDel(t *testing.T) {
	knows := models.NewRecordID("knows", 1)

	tests := []struct {
		name   string
		query  Delete
		wantQL string
	}{
		{
			name:   "delete table",
			query:  mustDel(t, "person"),
			wantQL: "DELETE person RETURN BEFORE",
		},
		{
			name:   "delete multiple targets",
			query:  mustDel(t, "person", "dog"),
			wantQL: "DELETE person, dog RETURN BEFORE",
		},
		{
			name:   "delete record link expression",
			query:  mustDel(t, "person:123"),
			wantQL: "DELETE person:123 RETURN BEFORE",
		},
		{
			name: "delete typed table target",
			query: func() Delete {
				q, err := Del(models.Table("my table"))
				require.NoError(t, err)
				return q
			}(),
			wantQL: "DELETE `my table` RETURN BEFORE",
		},
		{
			name: "delete record id target",
			query: func() Delete {
				q, err := Del(knows)
				require.NoError(t, err)
				return q
			}(),
			wantQL: "DELETE knows:1 RETURN BEFORE",
		},
		{
			name:   "return none",
			query:  mustDel(t, "person").ReturnNone(),
			wantQL: "DELETE person RETURN NONE",
		},
		{
			name:   "return cleared",
			query:  mustDel(t, "person").Return(""),
			wantQL: "DELETE person",
		},
		{
			name:   "return fields",
			query:  mustDel(t, "person").ReturnFields("name", "age", "name"),
			wantQL: "DELETE person RETURN name, age, name",
		},
		{
			name:   "return fields then mode",
			query:  mustDel(t, "person").ReturnFields("name").ReturnDiff(),
			wantQL: "DELETE person RETURN DIFF",
		},
		{
			name:   "custom return mode is rendered verbatim",
			query:  mustDel(t, "person").Return(ReturnMode("fields")),
			wantQL: "DELETE person RETURN fields",
		},
		{
			name:   "timeout",
			query:  mustDel(t, "person").Timeout(5 * time.Second),
			wantQL: "DELETE person RETURN BEFORE TIMEOUT 5s",
		},
		{
			name:   "timeout zero renders nothing",
			query:  mustDel(t, "person").Timeout(5 * time.Second).Timeout(0),
			wantQL: "DELETE person RETURN BEFORE",
		},
		{
			name:   "parallel",
			query:  mustDel(t, "person").Parallel(),
			wantQL: "DELETE person RETURN BEFORE PARALLEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotQL, err := tt.query.Render()
			require.NoError(t, err)

			if gotQL != tt.wantQL {
				t.Errorf("SurrealQL mismatch\ngot:  %q\nwant: %q", gotQL, tt.wantQL)
			}
		})
	}
}

func TestDel_noTargets(t *testing.T) {
	_, err := Del[string]()
	require.ErrorIs(t, err, constants.ErrNoTargets)
}

func TestDel_emptyTarget(t *testing.T) {
	_, err := Del("person", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target 1")
}

func TestDelRecord(t *testing.T) {
	q, err := DelRecord("person", 123)
	require.NoError(t, err)
	assert.Equal(t, "person:123", q.Targets())
	assert.Equal(t, CardinalityZeroOrOne, q.Cardinality())

	sql, err := q.Render()
	require.NoError(t, err)
	assert.Equal(t, "DELETE person:123 RETURN BEFORE", sql)
}

func TestDelRecord_emptyTable(t *testing.T) {
	_, err := DelRecord("", 123)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table name")
}

func TestDelRecordLink(t *testing.T) {
	q, err := DelRecordLink("person:tobie")
	require.NoError(t, err)
	assert.Equal(t, "person:tobie", q.Targets())
	assert.Equal(t, CardinalityZeroOrOne, q.Cardinality())

	_, err = DelRecordLink("person")
	require.Error(t, err)
}

func TestDelRelation(t *testing.T) {
	edge := models.NewRecordID("knows", 1)
	rel := models.Relationship{
		ID:       &edge,
		In:       models.NewRecordID("person", 1),
		Out:      models.NewRecordID("person", 2),
		Relation: "knows",
	}

	q, err := DelRelation(rel)
	require.NoError(t, err)
	assert.Equal(t, CardinalityZeroOrOne, q.Cardinality())

	sql, err := q.Render()
	require.NoError(t, err)
	assert.Equal(t, "DELETE knows:1 WHERE in = person:1 AND out = person:2 RETURN BEFORE", sql)
}

func TestDelRelation_tableFallback(t *testing.T) {
	rel := models.Relationship{
		In:       models.NewRecordID("person", 1),
		Out:      models.NewRecordID("person", 2),
		Relation: "knows",
	}

	q, err := DelRelation(rel)
	require.NoError(t, err)

	sql, err := q.Render()
	require.NoError(t, err)
	assert.Equal(t, "DELETE knows WHERE in = person:1 AND out = person:2 RETURN BEFORE", sql)
}

func TestDelRelation_errors(t *testing.T) {
	_, err := DelRelation(models.Relationship{
		In:  models.NewRecordID("person", 1),
		Out: models.NewRecordID("person", 2),
	})
	require.ErrorIs(t, err, constants.ErrNoRelationTarget)

	_, err = DelRelation(models.Relationship{
		Relation: "knows",
		In:       models.NewRecordID("person", 1),
	})
	require.ErrorIs(t, err, constants.ErrRelationEndpoint)
}

func TestWhere(t *testing.T) {
	q, err := mustDel(t, "person").Where(where.Predicate{"name": where.Eq("Alice")})
	require.NoError(t, err)

	sql, err := q.Render()
	require.NoError(t, err)
	assert.Equal(t, "DELETE person WHERE name = 'Alice' RETURN BEFORE", sql)
}

func TestWhere_replacesPreviousFilter(t *testing.T) {
	q, err := mustDel(t, "person").Where(where.Predicate{"name": where.Eq("Alice")})
	require.NoError(t, err)
	q, err = q.Where(where.Predicate{"age": where.Lt(18)})
	require.NoError(t, err)

	sql, err := q.Render()
	require.NoError(t, err)
	assert.Equal(t, "DELETE person WHERE age < 18 RETURN BEFORE", sql)
}

func TestWhereRaw(t *testing.T) {
	q, err := mustDel(t, "person").WhereRaw("count(->knows) > 3")
	require.NoError(t, err)

	sql, err := q.Render()
	require.NoError(t, err)
	assert.Equal(t, "DELETE person WHERE count(->knows) > 3 RETURN BEFORE", sql)
}

func TestWhere_relationDeleteLock(t *testing.T) {
	edge := models.NewRecordID("knows", 1)
	q, err := DelRelation(models.Relationship{
		ID:  &edge,
		In:  models.NewRecordID("person", 1),
		Out: models.NewRecordID("person", 2),
	})
	require.NoError(t, err)

	// The derived endpoint filter is fixed; manual filters must fail no
	// matter how the state was configured in between.
	_, err = q.Where(where.Predicate{"weight": where.Gt(1)})
	require.ErrorIs(t, err, constants.ErrRelationFilter)

	_, err = q.WhereRaw("weight > 1")
	require.ErrorIs(t, err, constants.ErrRelationFilter)

	_, err = q.Timeout(time.Second).Parallel().Where(where.Predicate{"weight": where.Gt(1)})
	require.ErrorIs(t, err, constants.ErrRelationFilter)
}

func TestRender_zeroValue(t *testing.T) {
	_, err := Delete{}.Render()
	require.ErrorIs(t, err, constants.ErrNoTargets)
	assert.Equal(t, "", Delete{}.String())
}

func TestRender_clauseOrdering(t *testing.T) {
	q, err := mustDel(t, "person").Where(where.Predicate{"age": where.Gte(18)})
	require.NoError(t, err)
	q = q.ReturnFields("name").Timeout(5 * time.Second).Parallel()

	sql, err := q.Render()
	require.NoError(t, err)
	assert.Equal(t, "DELETE person WHERE age >= 18 RETURN name TIMEOUT 5s PARALLEL", sql)
}

func TestRender_deterministic(t *testing.T) {
	q, err := mustDel(t, "person").Where(where.Predicate{
		"a": where.Eq(1),
		"b": where.Eq(2),
		"c": where.Eq(3),
	})
	require.NoError(t, err)

	first, err := q.Render()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := q.Render()
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestImmutability(t *testing.T) {
	base := mustDel(t, "person")
	baseSQL, err := base.Render()
	require.NoError(t, err)

	// Derive a heavily configured query from base, then check that base
	// still renders to its original text.
	derived, err := base.Where(where.Predicate{"name": where.Eq("Alice")})
	require.NoError(t, err)
	derived = derived.ReturnFields("name").Timeout(time.Minute).Parallel().WithAnySchema()

	_, err = derived.Render()
	require.NoError(t, err)

	afterSQL, err := base.Render()
	require.NoError(t, err)
	assert.Equal(t, baseSQL, afterSQL)
	assert.Nil(t, base.Schema())
}

func TestImmutability_branching(t *testing.T) {
	base := mustDel(t, "person").Return("")

	left := base.ReturnNone().Parallel()
	right := base.Timeout(5 * time.Second)

	leftSQL, err := left.Render()
	require.NoError(t, err)
	rightSQL, err := right.Render()
	require.NoError(t, err)
	baseSQL, err := base.Render()
	require.NoError(t, err)

	assert.Equal(t, "DELETE person RETURN NONE PARALLEL", leftSQL)
	assert.Equal(t, "DELETE person TIMEOUT 5s", rightSQL)
	assert.Equal(t, "DELETE person", baseSQL)
}

func TestOrderIndependence(t *testing.T) {
	base := mustDel(t, "person")

	a := base.ReturnNone().Timeout(5 * time.Second).Parallel()
	b := base.Parallel().Timeout(5 * time.Second).ReturnNone()
	c := base.Timeout(5 * time.Second).ReturnNone().Parallel()

	aSQL, err := a.Render()
	require.NoError(t, err)
	bSQL, err := b.Render()
	require.NoError(t, err)
	cSQL, err := c.Render()
	require.NoError(t, err)

	assert.Equal(t, aSQL, bSQL)
	assert.Equal(t, aSQL, cSQL)
}

func TestSchemaAttachment(t *testing.T) {
	base := mustDel(t, "person")
	require.Nil(t, base.Schema())

	q := base.WithAnySchema()
	require.NotNil(t, q.Schema())
	assert.NoError(t, q.Schema().Validate(map[string]any{"anything": true}))

	// The attached schema never affects the rendered text.
	baseSQL, err := base.Render()
	require.NoError(t, err)
	qSQL, err := q.Render()
	require.NoError(t, err)
	assert.Equal(t, baseSQL, qSQL)
}

func TestCardinality_String(t *testing.T) {
	assert.Equal(t, "many", CardinalityMany.String())
	assert.Equal(t, "zero-or-one", CardinalityZeroOrOne.String())
	assert.Equal(t, "one", CardinalityOne.String())
}
