package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hvacpanel/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hvacpanel",
	Short: "Admin dashboard for HVAC service companies",
	Long: `hvacpanel serves the admin dashboard of an HVAC service company:
clients, equipment, service orders, purchase orders, inventory and
reports behind a hash-routed single page shell.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
