// Package permission orchestrates the ACL engine, the identity
// resolver and the saved-object store into the permission control
// surface consumed by saved-object access wrappers.
package permission

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/osdash/warden/core"
	"github.com/osdash/warden/x/acl"
)

var tracer = otel.Tracer("permission")

type service struct {
	store    core.StoreClient
	identity core.IdentityService
	config   core.Config
}

func NewService(store core.StoreClient, identity core.IdentityService, config core.Config) core.PermissionService {
	return &service{store, identity, config}
}

// Validate checks the caller's permission on a single object
func (s *service) Validate(ctx context.Context, req core.Request, ref core.ObjectRef, permissionTypes []string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.Validate")
	defer span.End()

	return s.BatchValidate(ctx, req, []core.ObjectRef{ref}, permissionTypes)
}

// BatchValidate checks the caller's permission on every referenced
// object; all must individually permit. Objects with no permission
// record predate access control and always permit. A store failure is
// returned as an error, distinct from an evaluated deny.
func (s *service) BatchValidate(ctx context.Context, req core.Request, refs []core.ObjectRef, permissionTypes []string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.BatchValidate")
	defer span.End()

	if s.bypassesAuth(req) {
		countValidate(validateResultSuccess)
		return true, nil
	}

	principals, err := s.identity.Resolve(req.Auth)
	if err != nil {
		span.RecordError(err)
		countValidate(validateResultError)
		return false, err
	}

	objects, err := s.store.BulkGet(ctx, refs)
	countStoreOperation()
	if err != nil {
		span.RecordError(err)
		countValidate(validateResultError)
		return false, errors.Wrap(err, "failed to bulk get saved objects")
	}

	for _, object := range objects {
		if object.Permissions == nil {
			continue
		}
		if !acl.New(object.Permissions).HasPermission(permissionTypes, principals) {
			countValidate(validateResultFailure)
			return false, nil
		}
	}

	countValidate(validateResultSuccess)
	return true, nil
}

// GetPrincipalsOfObjects returns, per object id, the principal-keyed
// projection of its permission record.
func (s *service) GetPrincipalsOfObjects(ctx context.Context, refs []core.ObjectRef) (map[string][]core.TransformedPermission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.GetPrincipalsOfObjects")
	defer span.End()

	objects, err := s.store.BulkGet(ctx, refs)
	countStoreOperation()
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to bulk get saved objects")
	}

	principals := make(map[string][]core.TransformedPermission, len(objects))
	for _, object := range objects {
		principals[object.ID] = acl.New(object.Permissions).ToFlatList()
	}

	return principals, nil
}

// GetPermittedWorkspaceIDs lists the workspaces the caller may access
// under any of the permission types. Failures degrade to an empty
// list: navigation keeps working with no accessible workspaces rather
// than failing the whole request.
func (s *service) GetPermittedWorkspaceIDs(ctx context.Context, req core.Request, permissionTypes []string) []string {
	ctx, span := tracer.Start(ctx, "Permission.Service.GetPermittedWorkspaceIDs")
	defer span.End()

	var query core.Query
	if s.bypassesAuth(req) {
		query = core.QueryBool{
			Filter: []core.Query{core.QueryTerms{Path: []string{"type"}, Values: []string{core.ObjectTypeWorkspace}}},
		}
	} else {
		principals, err := s.identity.Resolve(req.Auth)
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "failed to resolve principals for workspace listing",
				slog.String("module", "permission"),
				slog.String("error", err.Error()),
			)
			return []string{}
		}
		query = acl.BuildPermissionQuery(permissionTypes, principals, []string{core.ObjectTypeWorkspace})
	}

	objects, err := s.store.Find(ctx, []string{core.ObjectTypeWorkspace}, query, s.searchLimit())
	countStoreOperation()
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "failed to search permitted workspaces",
			slog.String("module", "permission"),
			slog.String("error", err.Error()),
		)
		return []string{}
	}

	ids := make([]string, 0, len(objects))
	for _, object := range objects {
		ids = append(ids, object.ID)
	}

	return ids
}

// GetPrincipalsFromRequest pulls the authentication outcome off the
// request and delegates to the identity resolver.
func (s *service) GetPrincipalsFromRequest(req core.Request) (core.Principals, error) {
	return s.identity.Resolve(req.Auth)
}

// bypassesAuth is the explicit opt-in for deployments without any
// authentication backend. Off by default; an unknown auth status then
// resolves to empty principals and denies.
func (s *service) bypassesAuth(req core.Request) bool {
	return s.config.Engine.AllowNoAuth && req.Auth.Status == core.AuthStatusUnknown
}

func (s *service) searchLimit() int {
	if s.config.Engine.SearchLimit > 0 {
		return s.config.Engine.SearchLimit
	}
	return core.DefaultSearchLimit
}
