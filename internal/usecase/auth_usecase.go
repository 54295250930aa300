package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/fadilmartias/apostila-analyzer/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type TokenIssuer interface {
	Issue(userID uuid.UUID, role string) (string, error)
}

type AuthUsecase struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthUsecase(users UserStore, tokens TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

func (uc *AuthUsecase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if strings.TrimSpace(req.Name) == "" || email == "" || req.Password == "" {
		return nil, invalid("Nome, e-mail e senha são obrigatórios.")
	}

	exists, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, userErr(ErrConflict, "Já existe um usuário com este e-mail.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{
		ID:        uuid.New(),
		Nome:      strings.TrimSpace(req.Name),
		Email:     email,
		SenhaHash: string(hash),
		Role:      model.RoleUser,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, userErr(ErrConflict, "Já existe um usuário com este e-mail.")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return uc.session(user)
}

func (uc *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, invalid("E-mail e senha são obrigatórios.")
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userErr(ErrUnauthorized, "E-mail ou senha inválidos.")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Password)); err != nil {
		return nil, userErr(ErrUnauthorized, "E-mail ou senha inválidos.")
	}
	return uc.session(user)
}

func (uc *AuthUsecase) session(user *model.User) (*dto.AuthResponse, error) {
	token, err := uc.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User: dto.UserDTO{
			ID:    user.ID,
			Nome:  user.Nome,
			Email: user.Email,
			Role:  user.Role,
		},
		Token: token,
	}, nil
}
