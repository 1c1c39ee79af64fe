package service

import (
	"errors"
	"strings"

	"github.com/0001fella/abundant-life-sub000/internal/middleware"
	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService struct {
	repo   *mysql.UserRepository
	tokens middleware.TokenStore
}

func NewUserService(repo *mysql.UserRepository, tokens middleware.TokenStore) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(name, email, password, phone string) (*model.User, string, error) {
	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Phone:    phone,
		Role:     model.RoleMember,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := pkg.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Login(email, password string) (*model.User, string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := pkg.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout denylists the presented token for its remaining lifetime. An
// unparseable token has nothing left to revoke.
func (s *UserService) Logout(token string) error {
	claims, err := pkg.ParseToken(token)
	if err != nil {
		return nil
	}
	return s.tokens.Revoke(token, pkg.TokenRemaining(claims))
}

// UpdateProfile applies the provided fields to the caller's own record.
// Empty strings mean "leave unchanged".
func (s *UserService) UpdateProfile(userID uint64, name, email, phone, avatar, password string) (*model.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if email = strings.TrimSpace(email); email != "" && email != user.Email {
		if _, err := s.repo.FindByEmail(email); err == nil {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		user.Phone = phone
	}
	if avatar = strings.TrimSpace(avatar); avatar != "" {
		user.Avatar = avatar
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
