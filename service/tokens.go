package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/internal/validator"
	"github.com/emzola/scribe/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer     = "scribe"
	defaultTokenTTL = 10 * time.Hour
)

type tokens interface {
	CreateAuthenticationToken(ctx context.Context, email string, password string) (*data.Token, *data.User, error)
	VerifyAuthenticationToken(token string) (int64, error)
}

// CreateAuthenticationToken service checks a user's credentials and issues a
// new authentication token bound to the user.
func (s *service) CreateAuthenticationToken(ctx context.Context, email string, password string) (*data.Token, *data.User, error) {
	email = normalizeEmail(email)
	v := validator.New()
	v.Check(email != "", "email", "must be provided")
	v.Check(password != "", "password", "must be provided")
	if !v.Valid() {
		return nil, nil, failedValidation(v.Errors)
	}
	// A malformed address cannot belong to any account.
	if !validator.Matches(email, validator.EmailRX) {
		return nil, nil, ErrInvalidCredentials
	}
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, nil, ErrInvalidCredentials
		default:
			return nil, nil, err
		}
	}
	match, err := user.Password.Matches(password)
	if err != nil {
		return nil, nil, err
	}
	if !match {
		return nil, nil, ErrInvalidCredentials
	}
	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

// VerifyAuthenticationToken checks the signature, issuer and expiry of a token
// and returns the ID of the user it was issued to.
func (s *service) VerifyAuthenticationToken(token string) (int64, error) {
	v := validator.New()
	if data.ValidateTokenPlaintext(v, token); !v.Valid() {
		return 0, ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID < 1 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// issueToken signs a new HS256 token for userID.
func (s *service) issueToken(userID int64) (*data.Token, error) {
	ttl := s.config.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := s.now()
	expiry := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Auth.Secret))
	if err != nil {
		return nil, err
	}
	return &data.Token{Plaintext: signed, Expiry: expiry}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
