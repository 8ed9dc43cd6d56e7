//go:build wireinject

package warden

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/osdash/warden/core"
	"github.com/osdash/warden/x/identity"
	"github.com/osdash/warden/x/permission"
	"github.com/osdash/warden/x/store"
)

var identityServiceProvider = wire.NewSet(identity.NewService)
var storeClientProvider = wire.NewSet(store.NewRepository)
var permissionServiceProvider = wire.NewSet(
	permission.NewService,
	identityServiceProvider,
	storeClientProvider,
)

func SetupIdentityService() core.IdentityService {
	wire.Build(identityServiceProvider)
	return nil
}

func SetupStoreClient(db *gorm.DB) core.StoreClient {
	wire.Build(storeClientProvider)
	return nil
}

func SetupPermissionService(db *gorm.DB, config core.Config) core.PermissionService {
	wire.Build(permissionServiceProvider)
	return nil
}
