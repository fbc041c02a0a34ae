package services

import (
	"strings"
	"testing"

	"blog-api/authz"
	"blog-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(repo *fakePostRepo) PostService {
	return NewPostService(repo, authz.NewEngine(authz.DefaultRolePermissions()))
}

func createPost(t *testing.T, s PostService, author *models.User, title string, status models.PostStatus) *models.Post {
	t.Helper()
	post, err := s.CreatePost(author, models.CreatePostRequest{
		Title:   title,
		Content: "<p>content</p>",
		Status:  status,
	})
	require.NoError(t, err)
	return post
}

func TestCreatePostDefaults(t *testing.T) {
	s := newPostService(newFakePostRepo())
	author := &models.User{ID: 1, Role: models.RoleUser}

	post, err := s.CreatePost(author, models.CreatePostRequest{
		Title:   "My First Post",
		Content: "<p>hello</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusDraft, post.Status)
	assert.Equal(t, models.DefaultCategory, post.Category)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.True(t, strings.HasPrefix(post.Slug, "my-first-post-"))
}

func TestCreatePostRequiresPermission(t *testing.T) {
	repo := newFakePostRepo()
	author := &models.User{ID: 1, Role: models.RoleUser}

	// The default table grants create_post to plain users.
	_, err := newPostService(repo).CreatePost(author, models.CreatePostRequest{
		Title: "Allowed", Content: "x",
	})
	assert.NoError(t, err)

	// With the grant revoked the same call is denied with the missing
	// permission attached.
	revoked := NewPostService(repo, authz.NewEngine(map[models.UserRole][]string{
		models.RoleUser: {authz.PermCreateComment},
	}))
	_, err = revoked.CreatePost(author, models.CreatePostRequest{
		Title: "Denied", Content: "x",
	})

	var forbidden models.ErrorForbidden
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, authz.PermCreatePost, forbidden.Permission)
}

func TestCreatePostRetriesSlugCollision(t *testing.T) {
	s := newPostService(newFakePostRepo())
	author := &models.User{ID: 1, Role: models.RoleUser}

	first := createPost(t, s, author, "Same Title", "")
	second := createPost(t, s, author, "Same Title", "")

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "same-title-"))
}

func TestListPostsVisibility(t *testing.T) {
	repo := newFakePostRepo()
	s := newPostService(repo)
	author := &models.User{ID: 1, Role: models.RoleUser}

	createPost(t, s, author, "Draft Post", models.StatusDraft)
	createPost(t, s, author, "Published Post", models.StatusPublished)

	anonymous, err := s.ListPosts(nil)
	require.NoError(t, err)
	require.Len(t, anonymous, 1)
	assert.Equal(t, "Published Post", anonymous[0].Title)

	asUser, err := s.ListPosts(&models.User{ID: 2, Role: models.RoleUser})
	require.NoError(t, err)
	assert.Len(t, asUser, 1)

	asAdmin, err := s.ListPosts(&models.User{ID: 3, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, asAdmin, 2)

	asSuper, err := s.ListPosts(&models.User{ID: 4, Role: models.RoleSuperadmin})
	require.NoError(t, err)
	assert.Len(t, asSuper, 2)
}

func TestUpdatePostOwnership(t *testing.T) {
	s := newPostService(newFakePostRepo())
	owner := &models.User{ID: 1, Role: models.RoleUser}
	post := createPost(t, s, owner, "Original", "")

	newContent := "<p>edited</p>"

	_, err := s.UpdatePost(&models.User{ID: 2, Role: models.RoleUser}, post.ID, models.UpdatePostRequest{Content: &newContent})
	var ownership models.ErrorOwnership
	require.ErrorAs(t, err, &ownership)
	assert.NotErrorAs(t, err, &models.ErrorForbidden{})

	_, err = s.UpdatePost(owner, post.ID, models.UpdatePostRequest{Content: &newContent})
	assert.NoError(t, err)

	_, err = s.UpdatePost(&models.User{ID: 3, Role: models.RoleAdmin}, post.ID, models.UpdatePostRequest{Content: &newContent})
	assert.NoError(t, err)
}

func TestUpdatePostRecomputesSlugOnTitleChange(t *testing.T) {
	s := newPostService(newFakePostRepo())
	owner := &models.User{ID: 1, Role: models.RoleUser}
	post := createPost(t, s, owner, "Original Title", "")
	originalSlug := post.Slug

	newContent := "<p>edited</p>"
	updated, err := s.UpdatePost(owner, post.ID, models.UpdatePostRequest{Content: &newContent})
	require.NoError(t, err)
	assert.Equal(t, originalSlug, updated.Slug, "slug must not change when title is untouched")

	newTitle := "Renamed Title"
	updated, err = s.UpdatePost(owner, post.ID, models.UpdatePostRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.Slug, "renamed-title-"))
	assert.NotEqual(t, originalSlug, updated.Slug)
}

func TestDeletePostOwnership(t *testing.T) {
	s := newPostService(newFakePostRepo())
	owner := &models.User{ID: 1, Role: models.RoleUser}
	post := createPost(t, s, owner, "Doomed", "")

	err := s.DeletePost(&models.User{ID: 2, Role: models.RoleUser}, post.ID)
	assert.ErrorAs(t, err, &models.ErrorOwnership{})

	require.NoError(t, s.DeletePost(owner, post.ID))

	_, err = s.GetPost(post.ID)
	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}

func TestToggleLikeIsIdempotentPair(t *testing.T) {
	s := newPostService(newFakePostRepo())
	owner := &models.User{ID: 1, Role: models.RoleUser}
	post := createPost(t, s, owner, "Likeable", models.StatusPublished)

	liker := &models.User{ID: 2, Role: models.RoleUser}

	likes, err := s.ToggleLike(liker, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, likes)

	// Toggling again removes the like; membership returns to the original
	// state and never duplicates.
	likes, err = s.ToggleLike(liker, post.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	likes, err = s.ToggleLike(liker, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, likes)
}

func TestToggleLikeRequiresAuthentication(t *testing.T) {
	s := newPostService(newFakePostRepo())
	owner := &models.User{ID: 1, Role: models.RoleUser}
	post := createPost(t, s, owner, "Likeable", "")

	_, err := s.ToggleLike(nil, post.ID)
	assert.ErrorAs(t, err, &models.ErrorUnauthenticated{})
}

func TestToggleLikeMissingPost(t *testing.T) {
	s := newPostService(newFakePostRepo())

	_, err := s.ToggleLike(&models.User{ID: 1, Role: models.RoleUser}, 42)
	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}
