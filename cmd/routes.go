package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hvacpanel/internal/routes"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the dashboard's route table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		core, err := buildRouter(cfg)
		if err != nil {
			return err
		}
		printRoutes(cmd.OutOrStdout(), core.dispatcher.Table())
		return nil
	},
}

func printRoutes(w io.Writer, table *routes.Table) {
	for _, e := range table.Entries() {
		if e.Key == table.DefaultKey() {
			green.Fprintf(w, "* %-12s", e.Key)
		} else {
			fmt.Fprintf(w, "  %-12s", e.Key)
		}
		fmt.Fprintf(w, " %-18s", e.Title)

		variants := "list"
		if e.Detail != nil {
			variants += ",detail"
		}
		if e.Create != nil {
			variants += ",create"
		}
		fmt.Fprintf(w, " %-18s", variants)

		if e.OnUnmatchedDeepPath == routes.FallbackNotFound {
			yellow.Fprintf(w, " deep paths: %s\n", e.OnUnmatchedDeepPath)
		} else {
			fmt.Fprintf(w, " deep paths: %s\n", e.OnUnmatchedDeepPath)
		}
	}
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
