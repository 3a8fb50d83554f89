package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/config"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/database"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/seed"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/utils"
)

func main() {
	root := &cobra.Command{
		Use:          "stallionctl",
		Short:        "Operator tasks for the Stallion Air-Con backend",
		SilenceUsage: true,
	}

	root.AddCommand(migrateCmd(), seedCmd(), createAdminCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func connect() *gorm.DB {
	cfg := config.Load()
	return database.Connect(cfg.DatabaseURL)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and install the quote submit function",
		RunE: func(cmd *cobra.Command, args []string) error {
			connect()
			fmt.Println("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load catalog content from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := seed.Load(path)
			if err != nil {
				return err
			}

			if err := seed.Apply(connect(), file); err != nil {
				return err
			}

			fmt.Printf("seeded %d categories, %d brands, %d products\n",
				len(file.Categories), len(file.Brands), len(file.Products))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "catalog.yaml", "seed file path")
	return cmd
}

func createAdminCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create or update a back-office admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			hash, err := utils.HashPassword(password)
			if err != nil {
				return err
			}

			db := connect()
			admin := models.AdminUser{Email: email}
			if err := db.Where("email = ?", email).
				Assign(models.AdminUser{Name: name, Email: email, PasswordHash: hash}).
				FirstOrCreate(&admin).Error; err != nil {
				return err
			}

			fmt.Printf("admin %s ready\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	return cmd
}
