package core

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
)

// Principals is the set of identities an actor carries.
// An empty or nil set matches nothing; it is not "no constraint".
type Principals struct {
	Users  []string `json:"users,omitempty"`
	Groups []string `json:"groups,omitempty"`
}

// IsEmpty reports whether the value carries no identity at all
func (p Principals) IsEmpty() bool {
	return len(p.Users) == 0 && len(p.Groups) == 0
}

// Permissions maps a permission type name to the principals holding it.
// The vocabulary is open; keys absent from the map mean nobody holds
// that permission type.
type Permissions map[string]Principals

func (p Permissions) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *Permissions) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return ErrorUnsupportedScan{}
}

type PrincipalType string

const (
	PrincipalTypeUsers  PrincipalType = "users"
	PrincipalTypeGroups PrincipalType = "groups"
)

// TransformedPermission is the principal-keyed projection of a
// Permissions map, used for display and audit. Derived, never stored.
type TransformedPermission struct {
	Type        PrincipalType `json:"type"`
	Name        string        `json:"name"`
	Permissions []string      `json:"permissions"`
}

// ObjectRef identifies a saved object by storage type and id
type ObjectRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// SavedObject is the stored shape the engine evaluates. Objects with a
// nil Permissions map predate access control and are ungoverned.
type SavedObject struct {
	ID          string          `json:"id" gorm:"primaryKey;type:text"`
	Type        string          `json:"type" gorm:"primaryKey;type:text"`
	Attributes  json.RawMessage `json:"attributes,omitempty" gorm:"type:jsonb"`
	Workspaces  pq.StringArray  `json:"workspaces,omitempty" gorm:"type:text[]"`
	Permissions Permissions     `json:"permissions,omitempty" gorm:"type:jsonb"`
}

func (s SavedObject) Ref() ObjectRef {
	return ObjectRef{Type: s.Type, ID: s.ID}
}

type AuthStatus string

const (
	AuthStatusUnknown         AuthStatus = "unknown"
	AuthStatusAuthenticated   AuthStatus = "authenticated"
	AuthStatusUnauthenticated AuthStatus = "unauthenticated"
)

// AuthClaims is the claims bag produced by the deployment's
// authentication backend for an authenticated caller.
type AuthClaims struct {
	UserID       string   `json:"user_id,omitempty"`
	UserName     string   `json:"user_name,omitempty"`
	BackendRoles []string `json:"backend_roles,omitempty"`
}

// AuthContext is the already-resolved authentication outcome of an
// inbound request. This engine never authenticates anyone itself.
type AuthContext struct {
	Status AuthStatus  `json:"status"`
	Claims *AuthClaims `json:"claims,omitempty"`
}

// Request is the transport-agnostic slice of an inbound request this
// engine needs. The host application fills it from its own router.
type Request struct {
	Auth AuthContext `json:"auth"`
}
