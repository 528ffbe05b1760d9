package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/routes"
	"github.com/ziadkadry99/hvacpanel/internal/sidebar"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [hash]",
	Short: "Show which view a location hash resolves to",
	Long: `Parses a location hash the way the dashboard does and prints the
resulting navigation state, the view it dispatches to and the sidebar
entries it highlights. With no argument the root location is resolved.`,
	Example: `  hvacpanel resolve '#klienci/42'
  hvacpanel resolve zlecenia/nowa`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		core, err := buildRouter(cfg)
		if err != nil {
			return err
		}

		var raw string
		if len(args) == 1 {
			raw = args[0]
		}
		st := core.parser.Parse(raw)
		printResolution(cmd.OutOrStdout(), core.parser.Href(st), st, core.dispatcher.Dispatch(st), core.matcher.Items(st.Path))
		return nil
	},
}

func printResolution(w io.Writer, href string, st navigation.State, view routes.View, items []sidebar.Item) {
	bold.Fprintf(w, "%s\n", href)
	fmt.Fprintf(w, "  section:  %s\n", st.Key)
	fmt.Fprintf(w, "  resource: %s", st.Ref.Kind)
	if st.Ref.Kind == navigation.RefID {
		fmt.Fprintf(w, " %s", st.Ref.ID)
	}
	fmt.Fprintln(w)
	if st.Deep() {
		fmt.Fprintf(w, "  extra:    %s\n", strings.Join(st.Extra, "/"))
	}

	fmt.Fprint(w, "  view:     ")
	if view.Kind == routes.KindNotFound {
		red.Fprintf(w, "%s (%s)\n", view.Title, view.Requested)
	} else {
		green.Fprintf(w, "%s", view.Name)
		fmt.Fprintf(w, " %q\n", view.Title)
	}

	var active []string
	for _, it := range items {
		if it.Active {
			active = append(active, it.Path)
		}
	}
	fmt.Fprint(w, "  sidebar:  ")
	if len(active) == 0 {
		yellow.Fprintln(w, "no entry highlighted")
		return
	}
	cyan.Fprintln(w, strings.Join(active, ", "))
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
