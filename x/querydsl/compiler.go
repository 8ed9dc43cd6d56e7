// Package querydsl lowers the engine's clause tree into the
// boolean-clause JSON dialect of OpenSearch-compatible stores. The
// output is handed to the store verbatim.
package querydsl

import (
	"strings"

	"github.com/osdash/warden/core"
)

type Compiler struct {
}

func NewCompiler() core.QueryCompiler {
	return Compiler{}
}

// Compile wraps the lowered clause tree in a top-level query envelope.
// QueryNone becomes match_none, never match_all.
func (c Compiler) Compile(query core.Query) (any, error) {
	clause, err := c.compile(query)
	if err != nil {
		return nil, err
	}
	return map[string]any{"query": clause}, nil
}

func (c Compiler) compile(query core.Query) (map[string]any, error) {
	switch q := query.(type) {
	case core.QueryNone:
		return map[string]any{"match_none": map[string]any{}}, nil
	case core.QueryTerm:
		return map[string]any{
			"term": map[string]any{fieldPath(q.Path): q.Value},
		}, nil
	case core.QueryTerms:
		return map[string]any{
			"terms": map[string]any{fieldPath(q.Path): q.Values},
		}, nil
	case core.QueryBool:
		return c.compileBool(q)
	default:
		return nil, ErrorUnknownClause{}
	}
}

// compileBool keeps should clauses inside their own bool so that a
// sibling filter does not turn them optional (minimum_should_match
// defaults to 0 once a filter is present).
func (c Compiler) compileBool(query core.QueryBool) (map[string]any, error) {
	if len(query.Should) == 0 && len(query.Filter) == 0 {
		return map[string]any{"match_none": map[string]any{}}, nil
	}

	var should []map[string]any
	for _, clause := range query.Should {
		compiled, err := c.compile(clause)
		if err != nil {
			return nil, err
		}
		should = append(should, compiled)
	}

	var filter []map[string]any
	if len(should) > 0 {
		filter = append(filter, map[string]any{"bool": map[string]any{"should": should}})
	}
	for _, clause := range query.Filter {
		compiled, err := c.compile(clause)
		if err != nil {
			return nil, err
		}
		filter = append(filter, compiled)
	}

	if len(filter) == 1 && len(query.Filter) == 0 {
		return map[string]any{"bool": map[string]any{"should": should}}, nil
	}

	return map[string]any{"bool": map[string]any{"filter": filter}}, nil
}

func fieldPath(path []string) string {
	return strings.Join(path, ".")
}

type ErrorUnknownClause struct {
}

func (e ErrorUnknownClause) Error() string {
	return "Unknown Query Clause"
}
