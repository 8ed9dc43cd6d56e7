package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osdash/warden/core"
)

var s core.IdentityService

func TestMain(m *testing.M) {
	s = NewService()
	m.Run()
}

func TestResolveUnknownStatusYieldsEmptyPrincipals(t *testing.T) {
	principals, err := s.Resolve(core.AuthContext{Status: core.AuthStatusUnknown})
	assert.NoError(t, err)
	assert.True(t, principals.IsEmpty())
}

func TestResolveAuthenticatedClaims(t *testing.T) {
	principals, err := s.Resolve(core.AuthContext{
		Status: core.AuthStatusAuthenticated,
		Claims: &core.AuthClaims{UserName: "bar", BackendRoles: []string{"foo"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"bar"}, principals.Users)
	assert.Equal(t, []string{"foo"}, principals.Groups)
}

func TestResolvePrefersStableUserID(t *testing.T) {
	principals, err := s.Resolve(core.AuthContext{
		Status: core.AuthStatusAuthenticated,
		Claims: &core.AuthClaims{UserID: "uid-42", UserName: "display-name"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"uid-42"}, principals.Users)
}

func TestResolveAuthenticatedWithoutClaimsSynthesizesUniqueUser(t *testing.T) {
	first, err := s.Resolve(core.AuthContext{Status: core.AuthStatusAuthenticated})
	assert.NoError(t, err)
	assert.Len(t, first.Users, 1)

	second, err := s.Resolve(core.AuthContext{Status: core.AuthStatusAuthenticated, Claims: &core.AuthClaims{}})
	assert.NoError(t, err)
	assert.Len(t, second.Users, 1)

	assert.NotEqual(t, first.Users, second.Users)
}

func TestResolveUnauthenticatedFails(t *testing.T) {
	_, err := s.Resolve(core.AuthContext{Status: core.AuthStatusUnauthenticated})
	assert.Error(t, err)
	assert.ErrorAs(t, err, &core.ErrorNotAuthorized{})
}

func TestResolveUnexpectedStatusFails(t *testing.T) {
	_, err := s.Resolve(core.AuthContext{Status: core.AuthStatus("half-authenticated")})
	assert.Error(t, err)
	assert.ErrorAs(t, err, &core.ErrorUnexpectedAuthStatus{})
}
