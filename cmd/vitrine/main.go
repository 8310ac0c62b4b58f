package main

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vitrine/cmd/vitrine/app"
	"vitrine/internal/config"
	"vitrine/internal/fakestore"
	"vitrine/internal/logging"
	"vitrine/internal/session"
)

var version = "dev"

var (
	// Global flags
	configPath string
	baseURL    string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vitrine",
	Short: "vitrine - a terminal storefront for the Fake Store API",
	Long: `vitrine is a terminal storefront client backed by the public
Fake Store REST API.

It renders a product catalog with search, sort, and pagination, a product
detail view, and a read-only cart, gated behind the API's sample login.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorefront()
	},
}

// configCmd manages the config file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the vitrine configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vitrine version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vitrine", version)
	},
}

func runStorefront() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// Flag overrides win over file and environment.
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if verbose {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client := fakestore.New(cfg.API.BaseURL,
		fakestore.WithLogger(logger),
		fakestore.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
	)
	loader := session.NewLoader(client,
		session.WithUserID(cfg.API.UserID),
		session.WithLogger(logger),
	)

	logger.Info("starting vitrine",
		zap.String("version", version),
		zap.String("base_url", cfg.API.BaseURL))

	program := tea.NewProgram(app.New(cfg, client, loader, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the store API base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to the log file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
