// Package values renders Go values as SurrealQL literals.
//
// Render is the safe entry point: strings are quoted and escaped, record
// ids and table names are emitted as identifiers, and composites are
// rendered element by element. Untrusted string content can never escape
// its quoting. The only way to inject pre-rendered SurrealQL is the Raw
// type, which is an explicit caller opt-in.
package values

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/surrealdb/surrealql.go/pkg/models"
)

// Raw is SurrealQL text passed through verbatim by Render.
// The caller asserts that the content is safe.
type Raw string

// Render returns the SurrealQL literal for v, or an error for
// unsupported types.
func Render(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NONE", nil
	case Raw:
		return string(x), nil
	case string:
		return quoteString(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case time.Time:
		return "d'" + x.UTC().Format(time.RFC3339Nano) + "'", nil
	case time.Duration:
		return models.FormatDuration(x), nil
	case models.RecordID:
		return x.String(), nil
	case *models.RecordID:
		if x == nil {
			return "NONE", nil
		}
		return x.String(), nil
	case models.Table:
		return EscapeIdent(string(x)), nil
	case []any:
		return renderSlice(x)
	case map[string]any:
		return renderObject(x)
	case fmt.Stringer:
		return quoteString(x.String()), nil
	default:
		return "", fmt.Errorf("cannot render %T as a SurrealQL value", v)
	}
}

func renderSlice(xs []any) (string, error) {
	parts := make([]string, 0, len(xs))
	for _, x := range xs {
		s, err := Render(x)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// renderObject renders a map with keys in sorted order so that the
// output is deterministic.
func renderObject(m map[string]any) (string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		s, err := Render(m[k])
		if err != nil {
			return "", err
		}
		parts = append(parts, EscapeIdent(k)+": "+s)
	}
	return "{ " + strings.Join(parts, ", ") + " }", nil
}

// quoteString single-quotes s, escaping quotes and backslashes.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, ch := range s {
		if ch == '\'' || ch == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('\'')
	return b.String()
}

// EscapeIdent escapes an identifier for use in SurrealQL. Identifiers
// containing special characters or matching a reserved word are wrapped
// in backticks.
func EscapeIdent(ident string) string {
	if ident == "" || strings.ContainsAny(ident, " -:`") || isReservedWord(ident) {
		return "`" + strings.ReplaceAll(ident, "`", "\\`") + "`"
	}
	return ident
}

// isReservedWord checks if a word is a SurrealQL reserved word.
func isReservedWord(word string) bool {
	reserved := []string{
		"SELECT", "FROM", "WHERE", "ORDER", "BY", "LIMIT", "START",
		"FETCH", "GROUP", "SPLIT", "RETURN", "PARALLEL", "EXPLAIN",
		"CREATE", "UPDATE", "DELETE", "RELATE", "INSERT", "DEFINE",
		"REMOVE", "INFO", "USE", "BEGIN", "CANCEL", "COMMIT",
		"IF", "ELSE", "THEN", "END", "BREAK", "CONTINUE",
		"FUNCTION", "PARAM", "FIELD", "TYPE", "DEFAULT",
		"ASSERT", "PERMISSIONS", "DURATION", "FLEXIBLE",
	}

	upper := strings.ToUpper(word)
	for _, r := range reserved {
		if upper == r {
			return true
		}
	}
	return false
}
