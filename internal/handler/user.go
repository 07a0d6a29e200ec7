package handler

import (
	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// UserBody is the JSON shape of a user.
type UserBody struct {
	ID int64 `json:"id"`
}

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	*resource[domain.User, *domain.User, UserBody]
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{&resource[domain.User, *domain.User, UserBody]{
		name:    "user",
		service: userService,
		encode: func(u *domain.User) UserBody {
			return UserBody{ID: u.ID}
		},
		decode: func(b *UserBody) (*domain.User, error) {
			return &domain.User{ID: b.ID}, nil
		},
	}}
}
