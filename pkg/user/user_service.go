package user

import (
	"context"
	"errors"

	"recipevault/domain"
	"recipevault/entities"

	"gorm.io/gorm"
)

type (
	UserService interface {
		GetUser(ctx context.Context, id string) (*entities.User, error)
		SyncIdentity(ctx context.Context, identity domain.Identity) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepository.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SyncIdentity upserts the user row for an authenticated identity. Runs on
// every authenticated request so the users table always holds a row for the
// recipes foreign key to point at.
func (s *userService) SyncIdentity(ctx context.Context, identity domain.Identity) (*entities.User, error) {
	user := entities.User{
		ID:              identity.UserID,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
	}
	if identity.Email != "" {
		email := identity.Email
		user.Email = &email
	}

	return s.userRepository.UpsertUser(ctx, &user)
}
