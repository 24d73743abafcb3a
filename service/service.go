package service

import (
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/scribe/config"
	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/internal/jsonlog"
	"github.com/emzola/scribe/repository"
	"github.com/jellydator/ttlcache/v3"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

type Service interface {
	users
	tokens
	posts
	comments
}

// Services defines a service layer.
type service struct {
	config     config.Config
	wg         *sync.WaitGroup
	logger     *jsonlog.Logger
	repo       repository.Repository
	identities *ttlcache.Cache[int64, data.Identity]
	s3         *s3.Client
	strict     *bluemonday.Policy
	ugc        *bluemonday.Policy
	markdown   goldmark.Markdown
	now        func() time.Time
}

// New creates a new instance of Service. The identity cache is owned by the
// caller, which is responsible for starting and stopping it. s3Client may be
// nil when object storage is not configured.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository, identities *ttlcache.Cache[int64, data.Identity], s3Client *s3.Client) *service {
	return &service{
		config:     cfg,
		wg:         wg,
		logger:     logger,
		repo:       repo,
		identities: identities,
		s3:         s3Client,
		strict:     bluemonday.StrictPolicy(),
		ugc:        bluemonday.UGCPolicy(),
		markdown:   goldmark.New(),
		now:        time.Now,
	}
}
