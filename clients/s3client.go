package clients

import (
	"context"
	"time"

	s3Config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/scribe/config"
)

// uploadTimeout bounds a single request to object storage.
const uploadTimeout = time.Minute

// NewS3Client configures a new AWS S3 object storage client for post cover images.
func NewS3Client(ctx context.Context, cfg config.Config) (*s3.Client, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, "")
	awsCfg, err := s3Config.LoadDefaultConfig(ctx,
		s3Config.WithCredentialsProvider(creds),
		s3Config.WithRegion(cfg.S3.Region),
		s3Config.WithHTTPClient(NewHTTPClient(uploadTimeout)),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg), nil
}
