package main

import (
	"context"
	"sync"

	"github.com/MakeNowJust/heredoc"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/scribe/clients"
	"github.com/emzola/scribe/config"
	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/handler"
	"github.com/emzola/scribe/repository"
	"github.com/emzola/scribe/repository/postgres"
	"github.com/emzola/scribe/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/spf13/cobra"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	handler *handler.Handler
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Example: heredoc.Doc(`
			$ scribe serve
			$ JWT_SECRET=... scribe serve -c ./config.yaml
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// Initialize database connection
			db, err := postgres.OpenDBConn(cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			logger.PrintInfo("database connection pool established", nil)

			// Object storage is optional; cover uploads fail without it.
			var s3Client *s3.Client
			if cfg.S3.Bucket != "" {
				s3Client, err = clients.NewS3Client(context.Background(), cfg)
				if err != nil {
					return err
				}
			}

			// Other shared resources: waitgroup and identity cache
			var wg sync.WaitGroup
			identities := ttlcache.New(ttlcache.WithTTL[int64, data.Identity](cfg.Cache.IdentityTTL))
			go identities.Start()
			defer identities.Stop()

			// Application layers
			repo := repository.New(db)
			svc := service.New(cfg, &wg, logger, repo, identities, s3Client)
			a := &app{
				config:  cfg,
				handler: handler.New(cfg, logger, svc),
			}
			return a.serve(&wg, logger)
		},
	}
}
