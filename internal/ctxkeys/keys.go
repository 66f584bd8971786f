// Package ctxkeys defines typed context keys shared between middleware and
// handlers. Both packages import it, so neither has to import the other.
package ctxkeys

import "context"

// Key is a typed string used as context key to prevent collisions.
type Key string

const (
	UserID   Key = "userID"
	UserRole Key = "userRole"
)

// ValidRoles lists all valid role strings.
var ValidRoles = map[string]bool{
	"viewer":      true,
	"dispatcher":  true,
	"admin":       true,
	"super_admin": true,
}

// RoleLevel maps role names to permission levels.
// Hierarchy: super_admin > admin > dispatcher > viewer.
var RoleLevel = map[string]int{
	"viewer":      1,
	"dispatcher":  2,
	"admin":       3,
	"super_admin": 4,
}

// GetUserID returns the authenticated user's ID, or "" when unauthenticated.
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(UserID).(string)
	return id
}

// GetUserRole returns the authenticated user's role, or "" when unauthenticated.
func GetUserRole(ctx context.Context) string {
	role, _ := ctx.Value(UserRole).(string)
	return role
}
