package main

import (
	"os" // Exit codes

	"user_directory/internal/config"  // Custom import path (Config)
	"user_directory/internal/db"      // Custom import path (Database)
	"user_directory/internal/events"  // Custom import path (Event log)
	"user_directory/internal/logging" // Custom import path (Logging)
	"user_directory/internal/service" // Custom import path (Record service)
	"user_directory/internal/store"   // Custom import path (Store)

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	logFile := logging.Setup(cfg)

	err := newRootCmd(cfg).Execute()
	if err != nil {
		logrus.Errorf("migration failed: %v", err)
	}
	_ = logFile.Close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var storeFile, driver, dsn string
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Copy the users the API would list into a SQL table",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.Open(storeFile)
			users := service.NewUserService(st, events.NewMemoryLog()).List()

			conn, err := db.Open(driver, dsn)
			if err != nil {
				return err
			}
			if sqlDB, err := conn.DB(); err == nil {
				defer sqlDB.Close()
			}

			n, err := db.Export(conn, users)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"store_file": storeFile,
				"driver":     driver,
				"users":      n,
			}).Info("Migration completed.")
			return nil
		},
	}
	cmd.Flags().StringVar(&storeFile, "store", cfg.StoreFile, "users JSON document to read")
	cmd.Flags().StringVar(&driver, "driver", cfg.DBDriver, "target driver: mysql or sqlite")
	cmd.Flags().StringVar(&dsn, "dsn", cfg.DSN(), "target data source name")
	return cmd
}
