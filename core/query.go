package core

// Query is a store-agnostic boolean filter tree. The ACL engine emits
// it and per-store compilers lower it; keeping the tree neutral lets
// the boolean contract be tested apart from any store's query DSL.
type Query interface {
	isQuery()
}

// QueryNone matches nothing. Absent principals or permission types
// always compile to this, never to match-everything.
type QueryNone struct {
}

func (QueryNone) isQuery() {}

// QueryTerm matches documents whose field at Path equals Value exactly
type QueryTerm struct {
	Path  []string
	Value string
}

func (QueryTerm) isQuery() {}

// QueryTerms matches documents whose field at Path equals any of Values
type QueryTerms struct {
	Path   []string
	Values []string
}

func (QueryTerms) isQuery() {}

// QueryBool combines sub-clauses: at least one Should clause must
// match, and every Filter clause must match.
type QueryBool struct {
	Should []Query
	Filter []Query
}

func (QueryBool) isQuery() {}
