package dto

import "github.com/emzola/scribe/data"

// RegisterUserRequestBody defines a request body for RegisterUser service.
type RegisterUserRequestBody struct {
	Name     string `json:"name" validate:"max=500"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AuthenticationResponse is returned after a successful login.
type AuthenticationResponse struct {
	*data.Token
	User *data.User `json:"user"`
}
