package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "unspsc",
	Short: "Mutual-aid UNSPSC code registry",
	Long: "Looks up, searches, and validates the UNSPSC codes used to tag mutual-aid " +
		"requests and offers, and exports or publishes the registry.",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("UNSPSC_DB_URL"), "Postgres connection string (or set UNSPSC_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&cfg.ConfigPath, "config", "", "YAML file selecting segments to export/publish")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
