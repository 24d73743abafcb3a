package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func (s *ServiceTestSuite) TestRegisterUser() {
	s.Run("should register a user and issue a token for them", func() {
		token, user, err := s.service.RegisterUser(s.ctx, " Ada ", " Ada@Example.com ", "pa55word")

		s.Require().NoError(err)
		s.Equal("Ada", user.Name)
		s.Equal("ada@example.com", user.Email)
		s.NotEmpty(user.Password.Hash)
		s.NotEmpty(token.Plaintext)

		userID, err := s.service.VerifyAuthenticationToken(token.Plaintext)
		s.Require().NoError(err)
		s.Equal(user.ID, userID)
	})

	s.Run("should reject a duplicate email", func() {
		s.registerUser("", "ada@example.com")

		_, _, err := s.service.RegisterUser(s.ctx, "", "ADA@example.com", "pa55word")

		s.ErrorIs(err, ErrDuplicateRecord)
	})

	s.Run("should reject malformed input", func() {
		_, _, err := s.service.RegisterUser(s.ctx, "", "not-an-email", "short")

		errs := s.validationErrors(err)
		s.Contains(errs, "email")
		s.Contains(errs, "password")
	})
}

func (s *ServiceTestSuite) TestCreateAuthenticationToken() {
	s.Run("should issue a token for valid credentials", func() {
		userID := s.registerUser("Ada", "ada@example.com")

		token, user, err := s.service.CreateAuthenticationToken(s.ctx, "ada@example.com", "pa55word")

		s.Require().NoError(err)
		s.Equal(userID, user.ID)
		s.WithinDuration(s.service.now().Add(10*time.Hour), token.Expiry, time.Minute)
		verified, err := s.service.VerifyAuthenticationToken(token.Plaintext)
		s.Require().NoError(err)
		s.Equal(userID, verified)
	})

	s.Run("should reject a wrong password", func() {
		s.registerUser("", "ada@example.com")

		_, _, err := s.service.CreateAuthenticationToken(s.ctx, "ada@example.com", "wrong-password")

		s.ErrorIs(err, ErrInvalidCredentials)
	})

	s.Run("should reject an unknown email", func() {
		_, _, err := s.service.CreateAuthenticationToken(s.ctx, "nobody@example.com", "pa55word")

		s.ErrorIs(err, ErrInvalidCredentials)
	})

	s.Run("should reject a malformed email as invalid credentials", func() {
		_, _, err := s.service.CreateAuthenticationToken(s.ctx, "not-an-email", "pa55word")

		s.ErrorIs(err, ErrInvalidCredentials)
		s.NotErrorIs(err, ErrFailedValidation)
	})

	s.Run("should require both fields", func() {
		_, _, err := s.service.CreateAuthenticationToken(s.ctx, "", "")

		errs := s.validationErrors(err)
		s.Contains(errs, "email")
		s.Contains(errs, "password")
	})
}

func (s *ServiceTestSuite) TestVerifyAuthenticationToken() {
	s.Run("should reject an expired token", func() {
		issuedAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
		s.service.now = func() time.Time { return issuedAt }
		token, err := s.service.issueToken(1)
		s.Require().NoError(err)

		s.service.now = func() time.Time { return issuedAt.Add(10*time.Hour + time.Second) }
		_, err = s.service.VerifyAuthenticationToken(token.Plaintext)

		s.ErrorIs(err, ErrInvalidToken)
	})

	s.Run("should reject a token signed with another secret", func() {
		claims := jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
		s.Require().NoError(err)

		_, err = s.service.VerifyAuthenticationToken(forged)

		s.ErrorIs(err, ErrInvalidToken)
	})

	s.Run("should reject an unsigned token", func() {
		claims := jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		s.Require().NoError(err)

		_, err = s.service.VerifyAuthenticationToken(unsigned)

		s.ErrorIs(err, ErrInvalidToken)
	})

	s.Run("should reject malformed tokens", func() {
		for _, token := range []string{"", "not-a-token", "a.b.c"} {
			_, err := s.service.VerifyAuthenticationToken(token)
			s.ErrorIs(err, ErrInvalidToken, token)
		}
	})
}

func (s *ServiceTestSuite) TestGetUserForToken() {
	s.Run("should return the user a token was issued to", func() {
		userID := s.registerUser("Ada", "ada@example.com")
		token, err := s.service.issueToken(userID)
		s.Require().NoError(err)

		user, err := s.service.GetUserForToken(s.ctx, token.Plaintext)

		s.Require().NoError(err)
		s.Equal(userID, user.ID)
	})

	s.Run("should reject a token for a user that no longer exists", func() {
		token, err := s.service.issueToken(999)
		s.Require().NoError(err)

		_, err = s.service.GetUserForToken(s.ctx, token.Plaintext)

		s.ErrorIs(err, ErrInvalidToken)
	})
}
