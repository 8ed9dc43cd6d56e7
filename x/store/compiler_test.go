package store

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/osdash/warden/core"
	"github.com/osdash/warden/x/acl"
)

func TestCompileQueryMatchNone(t *testing.T) {
	compiled, err := compileQuery(core.QueryNone{})
	assert.NoError(t, err)
	assert.Equal(t, "1 = 0", compiled.expr)
	assert.Empty(t, compiled.args)
}

func TestCompileQueryPermissionClauses(t *testing.T) {
	query := acl.BuildPermissionQuery(
		[]string{core.PermissionRead},
		core.Principals{Users: []string{"user1"}},
		[]string{core.ObjectTypeWorkspace},
	)

	compiled, err := compileQuery(query)
	assert.NoError(t, err)
	assert.Equal(t,
		"((jsonb_exists_any(permissions #> ?, ?) OR jsonb_exists(permissions #> ?, ?)) AND type = ANY(?))",
		compiled.expr,
	)
	assert.Equal(t, []any{
		pq.Array([]string{"read", "users"}),
		pq.Array([]string{"user1"}),
		pq.Array([]string{"read", "users"}),
		core.Wildcard,
		pq.Array([]string{core.ObjectTypeWorkspace}),
	}, compiled.args)
}

func TestCompileQueryRejectsUnknownColumn(t *testing.T) {
	_, err := compileQuery(core.QueryTerm{Path: []string{"attributes"}, Value: "x"})
	assert.Error(t, err)

	_, err = compileQuery(core.QueryTerms{Path: []string{core.PermissionsField}, Values: []string{"x"}})
	assert.Error(t, err)
}

func TestCompileQueryEmptyBoolMatchesNothing(t *testing.T) {
	compiled, err := compileQuery(core.QueryBool{})
	assert.NoError(t, err)
	assert.Equal(t, "1 = 0", compiled.expr)
}
