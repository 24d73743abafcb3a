package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/emzola/scribe/config"
	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/internal/jsonlog"
	"github.com/emzola/scribe/repository/repositorytest"
	"github.com/jellydator/ttlcache/v3"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *repositorytest.Repository
	service *service
	wg      sync.WaitGroup
}

func (s *ServiceTestSuite) SetupTest() {
	s.reset()
}

func (s *ServiceTestSuite) SetupSubTest() {
	s.reset()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.wg.Wait()
}

func (s *ServiceTestSuite) reset() {
	var cfg config.Config
	cfg.Auth.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Auth.TokenTTL = 10 * time.Hour
	identities := ttlcache.New(ttlcache.WithTTL[int64, data.Identity](time.Minute))
	s.ctx = context.Background()
	s.repo = repositorytest.New()
	s.service = New(cfg, &s.wg, jsonlog.New(io.Discard, jsonlog.LevelOff), s.repo, identities, nil)
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// registerUser registers a user and returns its ID.
func (s *ServiceTestSuite) registerUser(name, email string) int64 {
	_, user, err := s.service.RegisterUser(s.ctx, name, email, "pa55word")
	s.Require().NoError(err)
	return user.ID
}

func (s *ServiceTestSuite) createPost() int64 {
	post, err := s.service.CreatePost(s.ctx, "Hello", "First *post*", "")
	s.Require().NoError(err)
	return post.ID
}

func (s *ServiceTestSuite) createComment(userID, postID int64, content string, parentID *int64) *data.Comment {
	comment, err := s.service.CreateComment(s.ctx, userID, postID, content, parentID)
	s.Require().NoError(err)
	return comment
}

// validationErrors asserts err is a validation failure and returns its field map.
func (s *ServiceTestSuite) validationErrors(err error) map[string]string {
	s.Require().ErrorIs(err, ErrFailedValidation)
	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	return verr.Errors
}
