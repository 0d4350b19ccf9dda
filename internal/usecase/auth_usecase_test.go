package usecase

import (
	"context"
	"errors"
	"testing"

	"permitpro/internal/domain/entities"
	mock_interfaces "permitpro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIUserRepository, *mock_interfaces.MockIAuthProvider) {
	ctrl := gomock.NewController(t)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	provider := mock_interfaces.NewMockIAuthProvider(ctrl)
	return NewAuthUseCase(users, provider), users, provider
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc, _, _ := newAuthUseCase(t)

		_, _, err := uc.Register(context.Background(), RegisterInput{})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Fields) != 3 {
			t.Fatalf("expected 3 field errors, got %+v", verr.Fields)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc, _, _ := newAuthUseCase(t)

		_, _, err := uc.Register(context.Background(), RegisterInput{
			Name: "Jane", Email: "jane@example.com", Password: "pw", Role: "Superuser",
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, users, _ := newAuthUseCase(t)

		users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(entities.User{ID: "existing"}, nil)

		_, _, err := uc.Register(context.Background(), RegisterInput{
			Name: "Jane", Email: "Jane@Example.com", Password: "pw",
		})
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("success defaults role to User", func(t *testing.T) {
		uc, users, provider := newAuthUseCase(t)

		users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(entities.User{}, nil)
		provider.EXPECT().HashPassword("pw").Return("hashed", nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Role != entities.RoleUser || u.PasswordHash != "hashed" {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)
		provider.EXPECT().IssueToken(gomock.Any()).Return("token-1", nil)

		user, token, err := uc.Register(context.Background(), RegisterInput{
			Name: "Jane", Email: " Jane@Example.com ", Password: "pw",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "jane@example.com" || token != "token-1" {
			t.Fatalf("unexpected result: %+v token=%s", user, token)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		uc, users, _ := newAuthUseCase(t)

		users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "jane@example.com", "pw")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, users, provider := newAuthUseCase(t)

		users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(entities.User{ID: "user-1", PasswordHash: "hashed"}, nil)
		provider.EXPECT().VerifyPassword("hashed", "wrong").Return(errors.New("mismatch"))

		_, _, err := uc.Login(context.Background(), "jane@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		uc, users, _ := newAuthUseCase(t)

		users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(entities.User{}, errors.New("dynamo down"))

		_, _, err := uc.Login(context.Background(), "jane@example.com", "pw")
		if !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, users, provider := newAuthUseCase(t)
		stored := entities.User{ID: "user-1", Email: "jane@example.com", PasswordHash: "hashed", Role: entities.RoleUser}

		users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(stored, nil)
		provider.EXPECT().VerifyPassword("hashed", "pw").Return(nil)
		provider.EXPECT().IssueToken(stored).Return("token-1", nil)

		user, token, err := uc.Login(context.Background(), " Jane@Example.com ", "pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "user-1" || token != "token-1" {
			t.Fatalf("unexpected result: %+v token=%s", user, token)
		}
	})
}
