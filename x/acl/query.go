package acl

import (
	"github.com/osdash/warden/core"
)

// BuildPermissionQuery compiles a permission check into a clause tree
// for permission-aware listing: for any of the permission types, the
// stored users or groups set contains one of the caller's ids or the
// wildcard. objectTypes, when present, restrict the object's storage
// type. Absent principals or permission types compile to match-nothing
// so a missing identity can never list everything.
func BuildPermissionQuery(permissionTypes []string, principals core.Principals, objectTypes []string) core.Query {
	if len(permissionTypes) == 0 || principals.IsEmpty() {
		return core.QueryNone{}
	}

	var should []core.Query
	for _, permissionType := range permissionTypes {
		if len(principals.Users) > 0 {
			path := []string{core.PermissionsField, permissionType, string(core.PrincipalTypeUsers)}
			should = append(should, core.QueryTerms{Path: path, Values: principals.Users})
			should = append(should, core.QueryTerm{Path: path, Value: core.Wildcard})
		}
		if len(principals.Groups) > 0 {
			path := []string{core.PermissionsField, permissionType, string(core.PrincipalTypeGroups)}
			should = append(should, core.QueryTerms{Path: path, Values: principals.Groups})
			should = append(should, core.QueryTerm{Path: path, Value: core.Wildcard})
		}
	}

	query := core.QueryBool{Should: should}
	if len(objectTypes) > 0 {
		query.Filter = []core.Query{core.QueryTerms{Path: []string{"type"}, Values: objectTypes}}
	}

	return query
}
