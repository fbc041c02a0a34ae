package services

import (
	"blog-api/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They return the same gorm sentinel errors as
// the real repositories so the services' error mapping is exercised.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, u := range r.users {
		if u.ID != user.ID && (u.Email == user.Email || u.Username == user.Username) {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakePostRepo struct {
	posts  map[uint]*models.Post
	likes  map[uint]map[uint]bool
	nextID uint
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts: map[uint]*models.Post{},
		likes: map[uint]map[uint]bool{},
	}
}

func (r *fakePostRepo) Create(post *models.Post) error {
	for _, p := range r.posts {
		if p.Slug == post.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	post.ID = r.nextID
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakePostRepo) GetByID(id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	copied.Likes = r.likeIDs(id)
	return &copied, nil
}

func (r *fakePostRepo) List(publishedOnly bool) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if publishedOnly && p.Status != models.StatusPublished {
			continue
		}
		copied := *p
		copied.Likes = r.likeIDs(p.ID)
		posts = append(posts, copied)
	}
	return posts, nil
}

func (r *fakePostRepo) Update(post *models.Post) error {
	existing, ok := r.posts[post.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, p := range r.posts {
		if p.ID != post.ID && p.Slug == post.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *post
	copied.CommentCount = existing.CommentCount
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakePostRepo) Delete(id uint) error {
	delete(r.posts, id)
	delete(r.likes, id)
	return nil
}

func (r *fakePostRepo) ToggleLike(postID, userID uint) ([]uint, error) {
	if r.likes[postID] == nil {
		r.likes[postID] = map[uint]bool{}
	}
	if r.likes[postID][userID] {
		delete(r.likes[postID], userID)
	} else {
		r.likes[postID][userID] = true
	}
	return r.likeIDs(postID), nil
}

func (r *fakePostRepo) likeIDs(postID uint) []uint {
	ids := make([]uint, 0, len(r.likes[postID]))
	for id := range r.likes[postID] {
		ids = append(ids, id)
	}
	return ids
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	posts    *fakePostRepo
	nextID   uint
}

func newFakeCommentRepo(posts *fakePostRepo) *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*models.Comment{}, posts: posts}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	r.nextID++
	comment.ID = r.nextID
	copied := *comment
	r.comments[comment.ID] = &copied
	if post, ok := r.posts.posts[comment.PostID]; ok {
		post.CommentCount++
	}
	return nil
}

func (r *fakeCommentRepo) GetByID(id uint) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) Delete(comment *models.Comment) error {
	delete(r.comments, comment.ID)
	if post, ok := r.posts.posts[comment.PostID]; ok {
		post.CommentCount--
	}
	return nil
}
