package store

import (
	"strings"

	"github.com/lib/pq"

	"github.com/osdash/warden/core"
)

// condition is a SQL fragment plus its bind arguments
type condition struct {
	expr string
	args []any
}

// columns the clause tree may address at the top level. Everything
// under the permissions field goes through the jsonb path form.
var queryableColumns = map[string]struct{}{
	"type": {},
	"id":   {},
}

// compileQuery lowers the clause tree to a SQL condition over the
// saved_objects row, using jsonb containment for permission paths.
// QueryNone lowers to a contradiction, never to a tautology.
func compileQuery(query core.Query) (condition, error) {
	switch q := query.(type) {
	case core.QueryNone:
		return condition{expr: "1 = 0"}, nil
	case core.QueryTerm:
		return compileTerm(q.Path, []string{q.Value}, true)
	case core.QueryTerms:
		return compileTerm(q.Path, q.Values, false)
	case core.QueryBool:
		return compileBool(q)
	default:
		return condition{}, ErrorUnknownClause{}
	}
}

func compileTerm(path []string, values []string, single bool) (condition, error) {
	if len(path) == 0 {
		return condition{}, ErrorInvalidPath{}
	}

	if path[0] == core.PermissionsField {
		if len(path) < 2 {
			return condition{}, ErrorInvalidPath{}
		}
		// jsonb_exists* instead of the ? operators, which collide
		// with bind placeholders
		if single {
			return condition{
				expr: "jsonb_exists(permissions #> ?, ?)",
				args: []any{pq.Array(path[1:]), values[0]},
			}, nil
		}
		return condition{
			expr: "jsonb_exists_any(permissions #> ?, ?)",
			args: []any{pq.Array(path[1:]), pq.Array(values)},
		}, nil
	}

	column := path[0]
	if _, ok := queryableColumns[column]; !ok || len(path) != 1 {
		return condition{}, ErrorInvalidPath{}
	}

	if single {
		return condition{expr: column + " = ?", args: []any{values[0]}}, nil
	}
	return condition{expr: column + " = ANY(?)", args: []any{pq.Array(values)}}, nil
}

func compileBool(query core.QueryBool) (condition, error) {
	if len(query.Should) == 0 && len(query.Filter) == 0 {
		return condition{expr: "1 = 0"}, nil
	}

	var parts []string
	var args []any

	if len(query.Should) > 0 {
		var should []string
		for _, clause := range query.Should {
			compiled, err := compileQuery(clause)
			if err != nil {
				return condition{}, err
			}
			should = append(should, compiled.expr)
			args = append(args, compiled.args...)
		}
		parts = append(parts, "("+strings.Join(should, " OR ")+")")
	}

	for _, clause := range query.Filter {
		compiled, err := compileQuery(clause)
		if err != nil {
			return condition{}, err
		}
		parts = append(parts, compiled.expr)
		args = append(args, compiled.args...)
	}

	return condition{expr: "(" + strings.Join(parts, " AND ") + ")", args: args}, nil
}

type ErrorUnknownClause struct {
}

func (e ErrorUnknownClause) Error() string {
	return "Unknown Query Clause"
}

type ErrorInvalidPath struct {
}

func (e ErrorInvalidPath) Error() string {
	return "Invalid Query Path"
}
