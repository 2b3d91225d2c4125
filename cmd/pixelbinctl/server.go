package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"pixelbin/pkg/config"
	"pixelbin/pkg/db"
	"pixelbin/pkg/server"
	"pixelbin/pkg/server/endpoints"
	gormstore "pixelbin/pkg/server/store/gorm"
	"pixelbin/pkg/session"
	"pixelbin/pkg/uploads"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Pixelbin application server",
	Long: `Run the Pixelbin application server

Requires DATABASE_URL and PIXELBIN_SESSION_KEY in the environment or the
config file.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		// Flags beat environment and file values.
		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		gormDB, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		files, err := uploads.NewFileStore(cfg.UploadDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to prepare upload directory: %v\n", err)
			os.Exit(1)
		}

		users := gormstore.NewUsersStore(gormDB)
		images := gormstore.NewImagesStore(gormDB)
		sessions := session.NewManager([]byte(cfg.SessionKey))
		uploader := uploads.NewPipeline(files, images)

		srv := server.NewServer(
			gormDB,
			users,
			images,
			sessions,
			uploader,
			cfg.MaxUploadBytes,
			cfg.BindAddress,
			cfg.Port,
		)
		endpoints.RegisterAll(srv)

		log.Printf("Pixelbin server listening on %s", cfg.Addr())
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringP("bind-address", "b", "", "Listen address (overrides config)")
	serverCmd.Flags().StringP("port", "p", "", "Listen port (overrides config)")
	serverCmd.Flags().Bool("no-migrate", false, "Skip database migrations on startup")
}
