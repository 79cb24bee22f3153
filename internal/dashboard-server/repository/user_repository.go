package repository

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/pkg/filestore"
	"context"
	"fmt"
)

type UserRepository interface {
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, id int, patch model.UserPatch) (model.User, error)
}

type userRepository struct {
	file *filestore.File[[]model.User]
}

func (u *userRepository) GetUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.file.Read()
	if err != nil {
		return nil, fmt.Errorf("userRepository.GetUsers: %w", err)
	}
	return users, nil
}

func (u *userRepository) GetUserByID(ctx context.Context, id int) (model.User, error) {
	users, err := u.file.Read()
	if err != nil {
		return model.User{}, fmt.Errorf("userRepository.GetUserByID: %w", err)
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return model.User{}, fmt.Errorf("userRepository.GetUserByID: %w", apperrors.ErrUserNotFound)
}

func (u *userRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	users, err := u.file.Read()
	if err != nil {
		return model.User{}, fmt.Errorf("userRepository.GetUserByUsername: %w", err)
	}
	for _, user := range users {
		if user.Username == username {
			return user, nil
		}
	}
	return model.User{}, fmt.Errorf("userRepository.GetUserByUsername: %w", apperrors.ErrUserNotFound)
}

// CreateUser assigns the next free id. The password must already be hashed.
func (u *userRepository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	_, err := u.file.Update(func(users []model.User) ([]model.User, error) {
		maxID := 0
		for _, existing := range users {
			if existing.Username == user.Username {
				return nil, apperrors.ErrUsernameAlreadyExists
			}
			maxID = max(maxID, existing.ID)
		}
		user.ID = maxID + 1
		return append(users, user), nil
	})
	if err != nil {
		return model.User{}, fmt.Errorf("userRepository.CreateUser: %w", err)
	}
	return user, nil
}

func (u *userRepository) UpdateUser(ctx context.Context, id int, patch model.UserPatch) (model.User, error) {
	var updated model.User
	_, err := u.file.Update(func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].ID == id {
				updated = patch.Apply(users[i])
				users[i] = updated
				return users, nil
			}
		}
		return nil, apperrors.ErrUserNotFound
	})
	if err != nil {
		return model.User{}, fmt.Errorf("userRepository.UpdateUser: %w", err)
	}
	return updated, nil
}

func NewUserRepository(file *filestore.File[[]model.User]) UserRepository {
	return &userRepository{file: file}
}
