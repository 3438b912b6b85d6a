package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/egghunt/internal/app"
	"github.com/abhisek/egghunt/internal/config"
	"github.com/abhisek/egghunt/internal/store"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "egghunt",
	Short: "An easter egg hunt that lives in your terminal",
	Long:  "Egghunt hides secrets behind key sequences, mouse gestures, scroll patterns, odd hours, and even your frame rate. Find them all.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		dbPath, _ := cmd.Flags().GetString("db")
		return app.Run(app.Options{Config: cfg, DBPath: dbPath})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default ~/.config/egghunt/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EGGHUNT_DB env var)")

	rootCmd.AddCommand(vaultCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func initConfig() {
	config.Init(v, cfgFile)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then EGGHUNT_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := v.GetString("storage.db_path"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the resolved database, shared by the query commands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
