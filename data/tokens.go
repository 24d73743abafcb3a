package data

import (
	"time"

	"github.com/emzola/scribe/internal/validator"
)

// Token defines a signed authentication token handed to a client.
type Token struct {
	Plaintext string    `json:"token"`
	Expiry    time.Time `json:"expiry"`
}

func ValidateTokenPlaintext(v *validator.Validator, tokenPlaintext string) {
	v.Check(tokenPlaintext != "", "token", "must be provided")
}
