package dto

import (
	"time"

	"github.com/pkondrashkov/accountd/internal/domain/model"
)

// UserPayload is the serialized user shape returned by account endpoints.
type UserPayload struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	LastLogin *time.Time `json:"last_login"`
}

// NewUserPayload maps a domain user onto the wire shape.
func NewUserPayload(u *model.User) UserPayload {
	return UserPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		LastLogin: u.LastLogin,
	}
}

// TokenRequest describes the login payload.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPayload is returned on successful login.
type TokenPayload struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// NewTokenPayload builds the login response payload.
func NewTokenPayload(u *model.User, key string) TokenPayload {
	return TokenPayload{
		Token:    key,
		Username: u.Username,
		Name:     u.FullName(),
	}
}
