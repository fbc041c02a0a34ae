package services

import (
	"errors"

	"blog-api/authz"
	"blog-api/models"
	"blog-api/repositories"

	"gorm.io/gorm"
)

type PostService interface {
	ListPosts(actor *models.User) ([]models.Post, error)
	GetPost(id uint) (*models.Post, error)
	CreatePost(actor *models.User, req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(actor *models.User, id uint, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(actor *models.User, id uint) error
	ToggleLike(actor *models.User, id uint) ([]uint, error)
}

type postService struct {
	postRepo repositories.PostRepository
	engine   *authz.Engine
}

func NewPostService(postRepo repositories.PostRepository, engine *authz.Engine) PostService {
	return &postService{postRepo: postRepo, engine: engine}
}

// ListPosts hides drafts from anonymous callers and plain users; admin and
// superadmin see everything.
func (s *postService) ListPosts(actor *models.User) ([]models.Post, error) {
	publishedOnly := actor == nil ||
		(actor.Role != models.RoleAdmin && actor.Role != models.RoleSuperadmin)

	return s.postRepo.List(publishedOnly)
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "post"}
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) CreatePost(actor *models.User, req models.CreatePostRequest) (*models.Post, error) {
	if err := s.engine.Decide(actor, authz.PermCreatePost); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	category := req.Category
	if category == "" {
		category = models.DefaultCategory
	}

	post := &models.Post{
		Title:         req.Title,
		Slug:          MakeSlug(req.Title),
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		AuthorID:      actor.ID,
		Category:      category,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		Status:        status,
	}

	err := s.postRepo.Create(post)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Suffix collision. Retry once with a fresh suffix before giving up.
		post.Slug = MakeSlug(req.Title)
		err = s.postRepo.Create(post)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Field: "slug"}
		}
		return nil, err
	}

	return s.postRepo.GetByID(post.ID)
}

// UpdatePost applies only the supplied fields. The author reference is
// immutable; a changed title recomputes the slug.
func (s *postService) UpdatePost(actor *models.User, id uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "post"}
		}
		return nil, err
	}

	if err := s.engine.CheckOwnership(actor, post.AuthorID, "post"); err != nil {
		return nil, err
	}

	titleChanged := false
	if req.Title != nil && *req.Title != post.Title {
		post.Title = *req.Title
		post.Slug = MakeSlug(*req.Title)
		titleChanged = true
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	err = s.postRepo.Update(post)
	if errors.Is(err, gorm.ErrDuplicatedKey) && titleChanged {
		post.Slug = MakeSlug(*req.Title)
		err = s.postRepo.Update(post)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Field: "slug"}
		}
		return nil, err
	}

	return s.postRepo.GetByID(id)
}

func (s *postService) DeletePost(actor *models.User, id uint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Entity: "post"}
		}
		return err
	}

	if err := s.engine.CheckOwnership(actor, post.AuthorID, "post"); err != nil {
		return err
	}

	return s.postRepo.Delete(id)
}

// ToggleLike requires authentication only; every role may like.
func (s *postService) ToggleLike(actor *models.User, id uint) ([]uint, error) {
	if actor == nil {
		return nil, models.ErrorUnauthenticated{Message: "authentication required"}
	}

	if _, err := s.postRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "post"}
		}
		return nil, err
	}

	return s.postRepo.ToggleLike(id, actor.ID)
}
