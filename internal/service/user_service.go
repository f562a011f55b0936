package service

import (
	"strings"
	"time"

	"storynest_backend/internal/model"
	"storynest_backend/internal/repository"
	"storynest_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles profile access, the user-side mood mirror, and
// administrative user management.
type UserService struct {
	UserRepo *repository.UserRepository
	MoodRepo *repository.MoodRepository
}

func NewUserService(userRepo *repository.UserRepository, moodRepo *repository.MoodRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
		MoodRepo: moodRepo,
	}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// ProfileUpdate carries the optional profile fields; nil leaves the stored
// value untouched.
type ProfileUpdate struct {
	Username *string
	Email    *string
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if email != user.Email {
			if existing, err := s.UserRepo.FindByEmail(email); err == nil && existing.ID != userID {
				return nil, util.ErrEmailRegistered
			} else if err != nil && err != gorm.ErrRecordNotFound {
				return nil, err
			}
			user.Email = email
		}
	}

	user.UpdatedAt = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetMoods returns the caller's mood logs, one entry per book.
func (s *UserService) GetMoods(userID uint) ([]model.BookMood, error) {
	return s.MoodRepo.ListByUser(userID)
}

func (s *UserService) ListUsers() ([]model.User, error) {
	return s.UserRepo.List()
}

// AdminUpdate is the administrative user edit; the password is re-hashed
// when provided.
type AdminUpdate struct {
	Username *string
	Email    *string
	Role     *string
	Password *string
}

func (s *UserService) UpdateUser(id uint, update AdminUpdate) (*model.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if email != user.Email {
			if existing, err := s.UserRepo.FindByEmail(email); err == nil && existing.ID != id {
				return nil, util.ErrEmailRegistered
			} else if err != nil && err != gorm.ErrRecordNotFound {
				return nil, err
			}
			user.Email = email
		}
	}
	if update.Role != nil {
		if !model.ValidRole(*update.Role) {
			return nil, util.ErrInvalidRole
		}
		user.Role = model.UserRole(*update.Role)
	}
	if update.Password != nil && *update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	user.UpdatedAt = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	return s.UserRepo.Delete(user)
}
