package services

import (
	"testing"

	"blog-api/authz"
	"blog-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func newUserService(repo *fakeUserRepo) UserService {
	return NewUserService(repo, authz.NewEngine(authz.DefaultRolePermissions()))
}

func TestListUsersRequiresManageUsers(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)

	plain := seedUser(t, repo, "plain", models.RoleUser)
	admin := seedUser(t, repo, "admin", models.RoleAdmin)

	_, err := s.ListUsers(plain)
	assert.ErrorAs(t, err, &models.ErrorForbidden{})

	users, err := s.ListUsers(admin)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateUserPartialFields(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)

	admin := seedUser(t, repo, "admin", models.RoleAdmin)
	target := seedUser(t, repo, "target", models.RoleUser)

	newRole := models.RoleAdmin
	updated, err := s.UpdateUser(admin, target.ID, models.UpdateUserRequest{Role: &newRole})
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, "target", updated.Username, "unsupplied fields must not change")
	assert.Equal(t, "target@example.com", updated.Email)
}

func TestUpdateUserGrantsExplicitPermissions(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)
	engine := authz.NewEngine(authz.DefaultRolePermissions())

	admin := seedUser(t, repo, "admin", models.RoleAdmin)
	target := seedUser(t, repo, "target", models.RoleUser)

	perms := []string{authz.PermViewStats}
	updated, err := s.UpdateUser(admin, target.ID, models.UpdateUserRequest{Permissions: &perms})
	require.NoError(t, err)

	assert.NoError(t, engine.Decide(updated, authz.PermViewStats))
}

func TestDeleteUserSuperadminOnly(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)

	admin := seedUser(t, repo, "admin", models.RoleAdmin)
	super := seedUser(t, repo, "super", models.RoleSuperadmin)
	target := seedUser(t, repo, "target", models.RoleUser)

	err := s.DeleteUser(admin, target.ID)
	assert.ErrorAs(t, err, &models.ErrorForbidden{})

	require.NoError(t, s.DeleteUser(super, target.ID))
	_, err = repo.GetByID(target.ID)
	assert.Error(t, err)
}

func TestDeleteUserSelfProtection(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)

	super := seedUser(t, repo, "super", models.RoleSuperadmin)

	err := s.DeleteUser(super, super.ID)
	assert.ErrorAs(t, err, &models.ErrorValidation{})

	_, err = repo.GetByID(super.ID)
	assert.NoError(t, err, "self-delete must not remove the account")
}

func TestDeleteUserNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)

	super := seedUser(t, repo, "super", models.RoleSuperadmin)

	err := s.DeleteUser(super, 999)
	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}
