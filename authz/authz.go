package authz

import (
	"blog-api/models"
)

// Permission tokens checked across the API.
const (
	PermCreatePost     = "create_post"
	PermEditOwnPost    = "edit_own_post"
	PermDeleteOwnPost  = "delete_own_post"
	PermCreateComment  = "create_comment"
	PermLikePost       = "like_post"
	PermManagePosts    = "manage_posts"
	PermManageComments = "manage_comments"
	PermManageUsers    = "manage_users"
	PermViewStats      = "view_stats"

	// PermDeleteUser appears in no role table, so only superadmin (or an
	// explicit override) passes the check.
	PermDeleteUser = "delete_user"
)

// DefaultRolePermissions returns the role table used in production.
// Superadmin is absent on purpose: Decide short-circuits it.
func DefaultRolePermissions() map[models.UserRole][]string {
	return map[models.UserRole][]string{
		models.RoleAdmin: {
			PermManagePosts,
			PermManageComments,
			PermManageUsers,
			PermViewStats,
		},
		models.RoleUser: {
			PermCreatePost,
			PermEditOwnPost,
			PermDeleteOwnPost,
			PermCreateComment,
			PermLikePost,
		},
	}
}

// Engine decides whether a caller may perform an action. The role table is
// copied at construction and never mutated afterwards, so separate engines
// (e.g. in tests) cannot observe each other.
type Engine struct {
	rolePermissions map[models.UserRole][]string
}

func NewEngine(table map[models.UserRole][]string) *Engine {
	copied := make(map[models.UserRole][]string, len(table))
	for role, perms := range table {
		copied[role] = append([]string(nil), perms...)
	}
	return &Engine{rolePermissions: copied}
}

// Decide allows or denies a permission token for the given actor.
// Order, first match wins: superadmin, explicit permission set, role table.
func (e *Engine) Decide(actor *models.User, permission string) error {
	if actor == nil {
		return models.ErrorUnauthenticated{Message: "authentication required"}
	}

	if actor.Role == models.RoleSuperadmin {
		return nil
	}

	for _, p := range actor.Permissions {
		if p == permission {
			return nil
		}
	}

	for _, p := range e.rolePermissions[actor.Role] {
		if p == permission {
			return nil
		}
	}

	return models.ErrorForbidden{Permission: permission}
}

// CheckOwnership applies the ownership overlay for mutations on posts and
// comments: the author may act, and so may admin or superadmin.
func (e *Engine) CheckOwnership(actor *models.User, ownerID uint, resource string) error {
	if actor == nil {
		return models.ErrorUnauthenticated{Message: "authentication required"}
	}

	if actor.ID == ownerID {
		return nil
	}

	if actor.Role == models.RoleAdmin || actor.Role == models.RoleSuperadmin {
		return nil
	}

	return models.ErrorOwnership{Resource: resource}
}
