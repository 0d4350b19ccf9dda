package response

import "permitpro/internal/domain/entities"

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func NewAuthResponse(u entities.User, token string) AuthResponse {
	return AuthResponse{User: FromUser(u), Token: token}
}
