package service

import (
	"context"
	"errors"
	"strings"

	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/internal/mailer"
	"github.com/emzola/scribe/internal/validator"
	"github.com/emzola/scribe/repository"
)

type users interface {
	RegisterUser(ctx context.Context, name string, email string, password string) (*data.Token, *data.User, error)
	ShowUser(ctx context.Context, userID int64) (*data.User, error)
	GetUserForToken(ctx context.Context, token string) (*data.User, error)
	ResolveIdentity(ctx context.Context, userID int64) (data.Identity, error)
}

// RegisterUser service registers a new user and issues an authentication
// token for them.
func (s *service) RegisterUser(ctx context.Context, name string, email string, password string) (*data.Token, *data.User, error) {
	user := &data.User{
		Name:  strings.TrimSpace(name),
		Email: normalizeEmail(email),
	}
	user.Password.Plaintext = &password
	v := validator.New()
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, nil, failedValidation(v.Errors)
	}
	err := user.Password.Set(password)
	if err != nil {
		return nil, nil, err
	}
	err = s.repo.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, nil, ErrDuplicateRecord
		default:
			return nil, nil, err
		}
	}
	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, nil, err
	}
	if s.config.SMTP.Host != "" {
		s.background(func() {
			data := map[string]string{
				"userName": firstName(user),
			}
			mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
			err := mailer.Send(user.Email, "user_welcome.tmpl", data)
			if err != nil {
				s.logger.PrintError(err, map[string]string{"recipient": user.Email})
			}
		})
	}
	return token, user, nil
}

// ShowUser service retrieves a user.
func (s *service) ShowUser(ctx context.Context, userID int64) (*data.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return user, nil
}

// GetUserForToken service retrieves the user an authentication token was issued to.
func (s *service) GetUserForToken(ctx context.Context, token string) (*data.User, error) {
	userID, err := s.VerifyAuthenticationToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrInvalidToken
		default:
			return nil, err
		}
	}
	return user, nil
}

func firstName(user *data.User) string {
	if fields := strings.Fields(user.Name); len(fields) > 0 {
		return fields[0]
	}
	return strings.Split(user.Email, "@")[0]
}
