package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"permitpro/internal/domain/entities"
	"permitpro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// RegisterInput is the command for creating an account. Role defaults to
// User when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entities.Role
}

// IAuthUseCase exposes account registration and credential login.
type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, string, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	provider interfaces.IAuthProvider
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, provider interfaces.IAuthProvider) *AuthUseCase {
	return &AuthUseCase{users: users, provider: provider}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Role == "" {
		in.Role = entities.RoleUser
	}

	var fields []FieldError
	if in.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if in.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "email is required"})
	}
	if in.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "password is required"})
	}
	if !in.Role.Valid() {
		fields = append(fields, FieldError{Field: "role", Message: "role must be Admin or User"})
	}
	if len(fields) > 0 {
		return entities.User{}, "", &ValidationError{Fields: fields}
	}

	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.User{}, "", storageErr(err)
	}
	if existing.ID != "" {
		return entities.User{}, "", ErrUserAlreadyExists
	}

	hash, err := u.provider.HashPassword(in.Password)
	if err != nil {
		return entities.User{}, "", err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		log.Printf("[auth][usecase] user create failed email=%s err=%v", in.Email, err)
		return entities.User{}, "", storageErr(err)
	}

	token, err := u.provider.IssueToken(created)
	if err != nil {
		return entities.User{}, "", err
	}
	return created, token, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", storageErr(err)
	}
	// Unknown email and bad password are indistinguishable to the caller.
	if user.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if err := u.provider.VerifyPassword(user.PasswordHash, password); err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	token, err := u.provider.IssueToken(user)
	if err != nil {
		return entities.User{}, "", err
	}
	return user, token, nil
}
