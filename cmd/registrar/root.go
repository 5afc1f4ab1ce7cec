package main

import (
	"fmt"
	"os"

	"github.com/aretw0/registrar"
	"github.com/aretw0/registrar/internal/cli"
	"github.com/aretw0/registrar/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "Registrar is an interactive console for student records",
	Long: `Registrar maintains a table of student records through numbered menus.
On startup it imports students.csv (when present in the config) into the store.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunSession(cli.RunOptions{
			Config:  cfg,
			Version: registrar.Version,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of registrar",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "registrar version %s\n", registrar.Version)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	registerFlags(rootCmd)
}

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("config", config.DefaultPath, "Path to the YAML configuration file")
	flags.String("store", "", "Record store driver (sqlite, postgres, redis, memory)")
	flags.String("dsn", "", "Database file or connection string for sql stores")
	flags.String("redis-addr", "", "Redis address for the redis store")
	flags.String("import", "", "CSV file imported at startup (empty string skips the import)")
	flags.Bool("debug", false, "Write debug logs to stderr")
	flags.Bool("rich", false, "Render listings as tables")
	flags.Bool("clear", false, "Erase the previous menu before showing the next one")
	flags.Bool("no-banner", false, "Do not print the startup banner")
}

// loadConfig reads the config file and applies every flag the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return cfg, err
	}

	if flags.Changed("store") {
		cfg.Store.Driver, _ = flags.GetString("store")
	}
	if flags.Changed("dsn") {
		cfg.Store.DSN, _ = flags.GetString("dsn")
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("import") {
		cfg.Import.Path, _ = flags.GetString("import")
	}
	if flags.Changed("debug") {
		cfg.Log.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("rich") {
		cfg.UI.Rich, _ = flags.GetBool("rich")
	}
	if flags.Changed("clear") {
		cfg.UI.Clear, _ = flags.GetBool("clear")
	}
	if flags.Changed("no-banner") {
		noBanner, _ := flags.GetBool("no-banner")
		cfg.UI.Banner = !noBanner
	}
	return cfg, cfg.Validate()
}
