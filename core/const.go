package core

// Wildcard is the reserved principal id meaning "every user" or
// "every group". It is matched specially, never by string equality
// against a caller id.
const Wildcard = "*"

// Well-known permission type names. The engine itself treats the
// vocabulary as open strings; these are conveniences for callers.
const (
	PermissionRead         = "read"
	PermissionWrite        = "write"
	PermissionLibraryRead  = "library_read"
	PermissionLibraryWrite = "library_write"
)

// ObjectTypeWorkspace is the storage type name of workspace objects
const ObjectTypeWorkspace = "workspace"

// PermissionsField is the field under which an object's ACL record is
// stored. Compiled query paths start from it.
const PermissionsField = "permissions"

// DefaultSearchLimit caps permitted-object searches when the config
// does not say otherwise.
const DefaultSearchLimit = 100
