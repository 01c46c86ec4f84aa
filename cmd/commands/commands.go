package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"hospital-management-api/cmd/bootstrap"
	"hospital-management-api/config"
	"hospital-management-api/internal/filedb"
	"hospital-management-api/internal/infrastructure/database"
	"hospital-management-api/internal/repository/postgres"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Run: func(cmd *cobra.Command, args []string) {
			app, err := bootstrap.New()
			if err != nil {
				log.Fatalf("Failed to initialize application: %v", err)
			}
			app.Run()
		},
	}
}

// NewMigrateCommand creates the migrate command. It creates the Postgres
// schema and optionally imports the JSON snapshot file into it.
func NewMigrateCommand() *cobra.Command {
	var importFile string

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres schema and optionally import a snapshot file",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration(importFile)
		},
	}

	migrateCmd.Flags().StringVar(&importFile, "import", "", "JSON snapshot file to import after migrating")

	return migrateCmd
}

func runMigration(importFile string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	fmt.Println("Migration completed successfully")

	if importFile == "" {
		return
	}

	store := filedb.NewStore(importFile)
	snap, err := store.Read()
	if err != nil {
		log.Fatalf("Failed to read snapshot file: %v", err)
	}

	if err := postgres.ImportSnapshot(db, snap); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	fmt.Printf("Imported %d users, %d patients, %d doctors, %d appointments, %d bills\n",
		len(snap.Users), len(snap.Patients), len(snap.Doctors), len(snap.Appointments), len(snap.Bills))
}
