package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/storacha/go-hashfn/registry"
)

func newList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported algorithms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range registry.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
