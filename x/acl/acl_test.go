package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osdash/warden/core"
)

func TestHasPermissionBasic(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{"user1"}},
	})

	assert.True(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1"}}))
	assert.False(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user2"}}))
	assert.False(t, a.HasPermission([]string{core.PermissionWrite}, core.Principals{Users: []string{"user1"}}))
}

func TestHasPermissionMatchesGroups(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionWrite: {Groups: []string{"g1", "g2"}},
	})

	assert.True(t, a.HasPermission([]string{core.PermissionWrite}, core.Principals{Groups: []string{"g2"}}))
	assert.False(t, a.HasPermission([]string{core.PermissionWrite}, core.Principals{Users: []string{"g2"}}))
}

func TestHasPermissionAnyOfRequestedTypes(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionLibraryRead: {Users: []string{"user1"}},
	})

	assert.True(t, a.HasPermission([]string{core.PermissionRead, core.PermissionLibraryRead}, core.Principals{Users: []string{"user1"}}))
}

func TestHasPermissionWildcardDominance(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{core.Wildcard, "someone"}},
	})

	assert.True(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"anyone-at-all"}}))
}

func TestHasPermissionDeniesOnAbsence(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{"user1"}},
	})

	assert.False(t, a.HasPermission(nil, core.Principals{Users: []string{"user1"}}))
	assert.False(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{}))
	assert.False(t, New(nil).HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1"}}))
}

func TestHasPermissionWildcardNeedsCallerOfSameKind(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{core.Wildcard}},
	})

	// caller carries only groups; the users wildcard must not match
	assert.False(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Groups: []string{"g1"}}))
}

func TestAddPermissionDeduplicates(t *testing.T) {
	a := New(nil)
	a.AddPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1", "user1"}})
	a.AddPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1", "user2"}})

	assert.ElementsMatch(t, []string{"user1", "user2"}, a.Permissions()[core.PermissionRead].Users)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{"user1"}, Groups: []string{"g1"}},
	})

	a.AddPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user2"}, Groups: []string{"g2"}}).
		RemovePermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user2"}, Groups: []string{"g2"}})

	assert.ElementsMatch(t, []string{"user1"}, a.Permissions()[core.PermissionRead].Users)
	assert.ElementsMatch(t, []string{"g1"}, a.Permissions()[core.PermissionRead].Groups)
}

func TestRemovePermissionKeepsWildcard(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{core.Wildcard, "user1"}},
	})

	a.RemovePermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1"}})
	assert.ElementsMatch(t, []string{core.Wildcard}, a.Permissions()[core.PermissionRead].Users)

	a.RemovePermission([]string{core.PermissionRead}, core.Principals{Users: []string{core.Wildcard}})
	assert.Empty(t, a.Permissions()[core.PermissionRead].Users)
}

func TestRemovePermissionMissingEntryIsNoop(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{"user1"}},
	})

	a.RemovePermission([]string{core.PermissionWrite}, core.Principals{Users: []string{"user1"}})
	a.RemovePermission([]string{core.PermissionRead}, core.Principals{})

	assert.ElementsMatch(t, []string{"user1"}, a.Permissions()[core.PermissionRead].Users)
}

func TestResetPermissions(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{"user1"}},
	})

	a.ResetPermissions()
	assert.Empty(t, a.Permissions())
	assert.False(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1"}}))
}

func TestToFlatListMergesAcrossTypes(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead:  {Users: []string{"user1"}},
		core.PermissionWrite: {Users: []string{"user1"}},
	})

	flat := a.ToFlatList()
	assert.Len(t, flat, 1)
	assert.Equal(t, core.PrincipalTypeUsers, flat[0].Type)
	assert.Equal(t, "user1", flat[0].Name)
	assert.ElementsMatch(t, []string{core.PermissionRead, core.PermissionWrite}, flat[0].Permissions)
}

func TestToFlatListDistinguishesKinds(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{"same-name"}, Groups: []string{"same-name"}},
	})

	flat := a.ToFlatList()
	assert.Len(t, flat, 2)

	kinds := []core.PrincipalType{flat[0].Type, flat[1].Type}
	assert.ElementsMatch(t, []core.PrincipalType{core.PrincipalTypeUsers, core.PrincipalTypeGroups}, kinds)
}

func TestWithOwner(t *testing.T) {
	a := WithOwner(core.Principals{Users: []string{"creator"}})

	assert.True(t, a.HasPermission([]string{core.PermissionWrite}, core.Principals{Users: []string{"creator"}}))
	assert.True(t, a.HasPermission([]string{core.PermissionLibraryWrite}, core.Principals{Users: []string{"creator"}}))
	assert.False(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"creator"}}))
}

// end-to-end scenario: grant, query, mutate, revoke
func TestACLScenario(t *testing.T) {
	a := New(core.Permissions{
		core.PermissionRead: {Users: []string{"user1"}},
	})

	assert.True(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1"}}))
	assert.False(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user2"}}))

	a.AddPermission([]string{core.PermissionWrite}, core.Principals{Groups: []string{"g1", "g2"}})
	assert.Equal(t, core.Permissions{
		core.PermissionRead:  {Users: []string{"user1"}},
		core.PermissionWrite: {Groups: []string{"g1", "g2"}},
	}, a.Permissions())

	a.RemovePermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1"}})
	assert.False(t, a.HasPermission([]string{core.PermissionRead}, core.Principals{Users: []string{"user1"}}))
}
