package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/emzola/scribe/repository/postgres"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate <up|down>",
		Short: "Apply or roll back the database schema",
		Example: heredoc.Doc(`
			$ scribe migrate up
			$ scribe migrate down -c ./config.yaml
		`),
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{string(postgres.Up), string(postgres.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := postgres.OpenDBConn(cfg)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			direction := postgres.Direction(args[0])
			if err := postgres.Migrate(db, direction); err != nil {
				return fmt.Errorf("migrating %s: %w", direction, err)
			}
			logger.PrintInfo("migrations applied", map[string]string{
				"direction": string(direction),
			})
			return nil
		},
	}
	return cmd
}
