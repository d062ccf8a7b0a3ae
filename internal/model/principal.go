package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleViewer  Role = "VIEWER"
)

// Principal is the authenticated caller, resolved from the access token by
// the auth middleware.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) CanWrite() bool {
	return p.Role == RoleAdmin || p.Role == RoleManager
}
