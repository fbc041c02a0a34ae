package services

import (
	"errors"

	"blog-api/authz"
	"blog-api/models"
	"blog-api/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	ListUsers(actor *models.User) ([]models.User, error)
	CreateUser(actor *models.User, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(actor *models.User, id uint, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(actor *models.User, id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
	engine   *authz.Engine
}

func NewUserService(userRepo repositories.UserRepository, engine *authz.Engine) UserService {
	return &userService{userRepo: userRepo, engine: engine}
}

func (s *userService) ListUsers(actor *models.User) ([]models.User, error) {
	if err := s.engine.Decide(actor, authz.PermManageUsers); err != nil {
		return nil, err
	}
	return s.userRepo.GetAll()
}

// CreateUser is the admin path and, unlike registration, honors an
// explicit role in the request.
func (s *userService) CreateUser(actor *models.User, req models.CreateUserRequest) (*models.User, error) {
	if err := s.engine.Decide(actor, authz.PermManageUsers); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Field: "username or email"}
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(actor *models.User, id uint, req models.UpdateUserRequest) (*models.User, error) {
	if err := s.engine.Decide(actor, authz.PermManageUsers); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "user"}
		}
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Permissions != nil {
		user.Permissions = *req.Permissions
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Field: "username or email"}
		}
		return nil, err
	}

	return user, nil
}

// DeleteUser is gated on a token no role table carries, so only superadmin
// passes. An actor can never delete their own account, superadmin included.
func (s *userService) DeleteUser(actor *models.User, id uint) error {
	if err := s.engine.Decide(actor, authz.PermDeleteUser); err != nil {
		return err
	}

	if actor.ID == id {
		return models.ErrorValidation{Message: "cannot delete your own account"}
	}

	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Entity: "user"}
		}
		return err
	}

	return s.userRepo.Delete(id)
}
