package services

import (
	"errors"

	"blog-api/authz"
	"blog-api/models"
	"blog-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	AddComment(actor *models.User, postID uint, req models.AddCommentRequest) (*models.Comment, error)
	DeleteComment(actor *models.User, commentID uint) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	engine      *authz.Engine
}

func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, engine *authz.Engine) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		engine:      engine,
	}
}

func (s *commentService) AddComment(actor *models.User, postID uint, req models.AddCommentRequest) (*models.Comment, error) {
	if err := s.engine.Decide(actor, authz.PermCreateComment); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "post"}
		}
		return nil, err
	}

	comment := &models.Comment{
		Content:  req.Content,
		PostID:   postID,
		AuthorID: actor.ID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(comment.ID)
}

func (s *commentService) DeleteComment(actor *models.User, commentID uint) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Entity: "comment"}
		}
		return err
	}

	if err := s.engine.CheckOwnership(actor, comment.AuthorID, "comment"); err != nil {
		return err
	}

	return s.commentRepo.Delete(comment)
}
