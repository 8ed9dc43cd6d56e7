//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

// StoreClient is the read surface of the external saved-object store.
// Mutation of objects (and persistence of edited Permissions maps)
// belongs to the store's own write path, not to this engine.
type StoreClient interface {
	Get(ctx context.Context, objectType string, id string) (SavedObject, error)
	BulkGet(ctx context.Context, refs []ObjectRef) ([]SavedObject, error)
	Find(ctx context.Context, objectTypes []string, query Query, limit int) ([]SavedObject, error)
}

type IdentityService interface {
	Resolve(auth AuthContext) (Principals, error)
}

type PermissionService interface {
	Validate(ctx context.Context, req Request, ref ObjectRef, permissionTypes []string) (bool, error)
	BatchValidate(ctx context.Context, req Request, refs []ObjectRef, permissionTypes []string) (bool, error)
	GetPrincipalsOfObjects(ctx context.Context, refs []ObjectRef) (map[string][]TransformedPermission, error)
	GetPermittedWorkspaceIDs(ctx context.Context, req Request, permissionTypes []string) []string
	GetPrincipalsFromRequest(req Request) (Principals, error)
}

// QueryCompiler turns the store-agnostic clause tree into whatever
// query object one concrete store executes. Compilers must map the
// match-nothing clause to a query that can never match.
type QueryCompiler interface {
	Compile(query Query) (any, error)
}
