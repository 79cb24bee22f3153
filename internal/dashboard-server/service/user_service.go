package service

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/repository"
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	// UpdateUser applies patch to the user. A non-nil Password in patch is plain text and gets hashed here.
	UpdateUser(ctx context.Context, id int, patch model.UserPatch) (model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func (u *userService) GetUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("userService.GetUsers: %w", err)
	}
	return users, nil
}

func (u *userService) GetUserByID(ctx context.Context, id int) (model.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("userService.GetUserByID: %w", err)
	}
	return user, nil
}

func (u *userService) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	user, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.User{}, fmt.Errorf("userService.GetUserByUsername: %w", err)
	}
	return user, nil
}

func (u *userService) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("userService.CreateUser: %w", err)
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if user.Status == "" {
		user.Status = model.UserStatusActive
	}
	created, err := u.userRepo.CreateUser(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("userService.CreateUser: %w", err)
	}
	return created, nil
}

func (u *userService) UpdateUser(ctx context.Context, id int, patch model.UserPatch) (model.User, error) {
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, fmt.Errorf("userService.UpdateUser: %w", err)
		}
		hashedStr := string(hashed)
		patch.Password = &hashedStr
	}
	updated, err := u.userRepo.UpdateUser(ctx, id, patch)
	if err != nil {
		return model.User{}, fmt.Errorf("userService.UpdateUser: %w", err)
	}
	return updated, nil
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}
