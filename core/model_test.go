package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalsIsEmpty(t *testing.T) {
	assert.True(t, Principals{}.IsEmpty())
	assert.False(t, Principals{Users: []string{"user1"}}.IsEmpty())
	assert.False(t, Principals{Groups: []string{"g1"}}.IsEmpty())
}

func TestPermissionsScanNullStaysNil(t *testing.T) {
	// a NULL column means the object predates access control; it must
	// not scan into an empty (governed) map
	var p Permissions
	err := p.Scan(nil)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestPermissionsValueScanRoundTrip(t *testing.T) {
	original := Permissions{
		PermissionRead: {Users: []string{"user1"}, Groups: []string{"g1"}},
	}

	value, err := original.Value()
	assert.NoError(t, err)

	var scanned Permissions
	err = scanned.Scan(value)
	assert.NoError(t, err)
	assert.Equal(t, original, scanned)
}

func TestPermissionsValueNil(t *testing.T) {
	var p Permissions
	value, err := p.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)
}
