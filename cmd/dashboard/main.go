package main

import (
	"context"
	"errors"
	"fmt"
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/drivers/database"
	"mindcare-service/internal/app/drivers/logger"
	"mindcare-service/internal/app/services/core/dashboard"
	"mindcare-service/internal/app/services/shared/docstore"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mindcare-dashboard",
		Short: "Inspect the therapist dashboard from the command line",
	}

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Tag: %s\n", Tag)
		},
	}
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build the dashboard of a practitioner and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			practitionerID, _ := cmd.Flags().GetString("practitioner")
			fixtures, _ := cmd.Flags().GetString("fixtures")
			compound, _ := cmd.Flags().GetBool("compound")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewZapLogger(driverConfig, internalConfig)
			defer func() { _ = log.Sync() }()

			store, release, err := openDocumentStore(driverConfig, log, fixtures, compound)
			if err != nil {
				return err
			}
			defer release()

			dashboardUsecase, err := dashboard.NewDashboardUsecase(store, internalConfig, log)
			if err != nil {
				return err
			}

			tracker := dashboard.NewDashboardTracker(dashboardUsecase, log)
			defer tracker.Close()

			select {
			case <-tracker.SetIdentity(practitionerID):
			case <-time.After(timeout):
				return fmt.Errorf("dashboard was not ready after %s", timeout)
			}

			state := tracker.State()
			encoded, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))

			if state.Failed {
				return errors.New("dashboard load failed, see the logs for the cause")
			}
			return nil
		},
	}
	cmd.Flags().String("practitioner", "", "Practitioner identity to build the dashboard for")
	cmd.Flags().String("fixtures", "", "Path to a JSON fixture file; reads MongoDB when empty")
	cmd.Flags().Bool("compound", true, "Whether the fixture store supports compound ordering")
	cmd.Flags().Duration("timeout", 30*time.Second, "Maximum time to wait for the dashboard")
	return cmd
}

// openDocumentStore returns the fixture store when a fixture file is given,
// otherwise the MongoDB one. release frees whatever was opened.
func openDocumentStore(driverConfig *config.DriverConfig, log *zap.Logger, fixtures string, compound bool) (contracts.DocumentStore, func(), error) {
	if fixtures != "" {
		store := docstore.NewMemoryDocumentStore(compound)
		if err := docstore.LoadFixtureFile(store, fixtures); err != nil {
			return nil, nil, err
		}
		log.Info("Loaded dashboard fixtures", zap.String("file", fixtures))
		return store, func() {}, nil
	}

	client := database.NewMongoDB(driverConfig)
	store := docstore.NewMongoDocumentStore(client.Database(driverConfig.MongoDB.DbName), log)
	return store, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}, nil
}
