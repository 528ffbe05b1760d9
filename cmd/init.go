package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hvacpanel/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize hvacpanel configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the dashboard and writes the result to the --config path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		green.Fprintf(cmd.OutOrStdout(), "✓ Run `hvacpanel server` and open http://localhost:%d\n", cfg.Server.Port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
