// Package acl implements the per-object access control list: a
// Permissions map wrapped with query, mutation and projection
// operations. Instances are short-lived; construct one from freshly
// fetched data per evaluation and discard it.
package acl

import (
	"github.com/osdash/warden/core"
)

type ACL struct {
	permissions core.Permissions
}

// New wraps an existing Permissions map, or starts empty when nil
func New(permissions core.Permissions) *ACL {
	if permissions == nil {
		permissions = core.Permissions{}
	}
	return &ACL{permissions: permissions}
}

// WithOwner builds the default ACL for a newly created object: the
// creating principals get write and library_write.
func WithOwner(owner core.Principals) *ACL {
	return New(nil).AddPermission([]string{core.PermissionWrite, core.PermissionLibraryWrite}, owner)
}

// HasPermission reports whether any of the requested permission types
// is held by a principal overlapping the caller's. Empty permission
// types, an empty map or an empty caller all deny.
func (a *ACL) HasPermission(permissionTypes []string, principals core.Principals) bool {
	if len(permissionTypes) == 0 || len(a.permissions) == 0 || principals.IsEmpty() {
		return false
	}

	for _, permissionType := range permissionTypes {
		stored, ok := a.permissions[permissionType]
		if !ok {
			continue
		}
		if overlaps(stored.Users, principals.Users) || overlaps(stored.Groups, principals.Groups) {
			return true
		}
	}

	return false
}

// overlaps matches one principal kind: the stored set holds the
// wildcard, or the two sets share a member. Either side empty never
// matches.
func overlaps(stored []string, callers []string) bool {
	if len(stored) == 0 || len(callers) == 0 {
		return false
	}

	members := make(map[string]struct{}, len(stored))
	for _, id := range stored {
		members[id] = struct{}{}
	}

	if _, ok := members[core.Wildcard]; ok {
		return true
	}

	for _, id := range callers {
		if _, ok := members[id]; ok {
			return true
		}
	}

	return false
}

// AddPermission unions the principals into every named permission
// type, deduplicating. No-op on empty arguments.
func (a *ACL) AddPermission(permissionTypes []string, principals core.Principals) *ACL {
	if len(permissionTypes) == 0 || principals.IsEmpty() {
		return a
	}

	for _, permissionType := range permissionTypes {
		entry := a.permissions[permissionType]
		entry.Users = union(entry.Users, principals.Users)
		entry.Groups = union(entry.Groups, principals.Groups)
		a.permissions[permissionType] = entry
	}

	return a
}

// RemovePermission removes the principals from every named permission
// type by exact match. A stored wildcard is a distinct member; it is
// only removed when the wildcard itself is passed.
func (a *ACL) RemovePermission(permissionTypes []string, principals core.Principals) *ACL {
	if len(permissionTypes) == 0 || principals.IsEmpty() {
		return a
	}

	for _, permissionType := range permissionTypes {
		entry, ok := a.permissions[permissionType]
		if !ok {
			continue
		}
		entry.Users = subtract(entry.Users, principals.Users)
		entry.Groups = subtract(entry.Groups, principals.Groups)
		a.permissions[permissionType] = entry
	}

	return a
}

// ResetPermissions discards all stored permissions
func (a *ACL) ResetPermissions() {
	a.permissions = core.Permissions{}
}

// Permissions returns the wrapped map. Callers persist it through the
// store's own write path; the engine never writes storage itself.
func (a *ACL) Permissions() core.Permissions {
	return a.permissions
}

// ToFlatList inverts the map into one entry per distinct principal,
// carrying every permission type that principal appears under.
// Output order is unspecified.
func (a *ACL) ToFlatList() []core.TransformedPermission {
	type principalKey struct {
		kind core.PrincipalType
		name string
	}

	index := make(map[principalKey]int)
	flat := []core.TransformedPermission{}

	accumulate := func(kind core.PrincipalType, names []string, permissionType string) {
		for _, name := range names {
			key := principalKey{kind: kind, name: name}
			i, ok := index[key]
			if !ok {
				flat = append(flat, core.TransformedPermission{Type: kind, Name: name})
				i = len(flat) - 1
				index[key] = i
			}
			flat[i].Permissions = union(flat[i].Permissions, []string{permissionType})
		}
	}

	for permissionType, principals := range a.permissions {
		accumulate(core.PrincipalTypeUsers, principals.Users, permissionType)
		accumulate(core.PrincipalTypeGroups, principals.Groups, permissionType)
	}

	return flat
}

func union(existing []string, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range incoming {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		existing = append(existing, id)
	}
	return existing
}

func subtract(existing []string, removing []string) []string {
	if len(existing) == 0 || len(removing) == 0 {
		return existing
	}
	drop := make(map[string]struct{}, len(removing))
	for _, id := range removing {
		drop[id] = struct{}{}
	}
	kept := existing[:0]
	for _, id := range existing {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	return kept
}
