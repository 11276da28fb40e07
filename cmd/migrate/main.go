// cmd/migrate/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sirecovip/backend/internal/config"
	"github.com/sirecovip/backend/internal/model"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema management for the merchant registry",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Create or update the merchants, organizations and users tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate()
		},
	}

	rootCmd.AddCommand(upCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func migrate() error {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Organization{},
		&model.User{},
		&model.Merchant{},
	); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	fmt.Println("migrations applied")
	return nil
}
