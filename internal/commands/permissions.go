// internal/commands/permissions.go
package commands

// PermissionGuard decides whether an invoking member is an
// administrator, based on a fixed allow-list of role IDs.
type PermissionGuard struct {
	adminRoles map[string]struct{}
}

func NewPermissionGuard(adminRoleIDs []string) *PermissionGuard {
	roles := make(map[string]struct{}, len(adminRoleIDs))
	for _, id := range adminRoleIDs {
		roles[id] = struct{}{}
	}

	return &PermissionGuard{adminRoles: roles}
}

// IsAdmin reports whether any of the member's roles is on the
// allow-list. Absent role information (a direct message, or a message
// with no member attached) is never an admin.
func (g *PermissionGuard) IsAdmin(roleIDs []string) bool {
	for _, id := range roleIDs {
		if _, ok := g.adminRoles[id]; ok {
			return true
		}
	}

	return false
}
