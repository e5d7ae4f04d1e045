package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/1broseidon/gridsnap/internal/hotkeys"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List grid positions with their labels, tokens and hotkeys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		binding, err := hotkeys.NewBinding(cfg.ParsedModifier(), cfg.KeyMap())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "POSITION\tLABEL\tTOKEN\tHOTKEY")
		for _, e := range binding.Entries() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s+%s\n", e.Position.Name(), e.Position.Label(), e.Token, binding.Modifier(), e.Key)
		}
		return w.Flush()
	},
}
