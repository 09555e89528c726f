package service

import (
	"errors"

	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	apperrors "github.com/storelink/storelink-backend/internal/errors"
	"github.com/storelink/storelink-backend/pkg/logger"
	"github.com/storelink/storelink-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type RegisterUserInput struct {
	Email    string
	Password string
	Name     string
}

type UserService interface {
	Register(input RegisterUserInput) (*model.User, error)
	Authenticate(email, password string) (*model.User, error)
	GetUser(id uint) (*model.User, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(input RegisterUserInput) (*model.User, error) {
	logger.Info("Registering user", map[string]interface{}{
		"email": input.Email,
	})

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			logger.Warn("Email already registered", map[string]interface{}{
				"email": input.Email,
			})
			return nil, ErrEmailTaken
		}
		logger.Error("Failed to register user", err, map[string]interface{}{
			"email": input.Email,
		})
		return nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

func (s *userService) Authenticate(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUser(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account. Stores the user owned and the buyer
// profile cascade away; records stamped created_by keep the row with
// the stamp cleared.
func (s *userService) DeleteUser(id uint) error {
	logger.Info("Deleting user", map[string]interface{}{
		"user_id": id,
	})

	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(id)
}
