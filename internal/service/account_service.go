package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/inkwell-social/inkwell/internal/config"
	"github.com/inkwell-social/inkwell/internal/model"
	"github.com/inkwell-social/inkwell/internal/repository"
	"github.com/inkwell-social/inkwell/pkg/token"
)

type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	// Login returns the account and a signed bearer token.
	Login(ctx context.Context, username, password string) (*model.User, string, error)
}

type accountService struct {
	users repository.UserRepository
	auth  config.Auth
}

func NewAccountService(users repository.UserRepository, auth config.Auth) AccountService {
	return &accountService{users: users, auth: auth}
}

func (s *accountService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{Username: username, Email: email, Password: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *accountService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	signed, err := token.Generate(s.auth.JWTSecret, s.auth.TokenTTL, user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}
