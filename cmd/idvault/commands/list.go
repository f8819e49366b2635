package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored identities and profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := wire.Identity.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, rec := range ids {
				kind := "peer"
				if rec.IsSelf() {
					kind = "self"
				}
				fmt.Printf("%s  [%s]  %s\n", rec.ID, kind, rec.Nickname)
			}

			profiles, err := wire.Profile.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, rec := range profiles {
				fmt.Printf("%s  [%s]  %s\n", rec.ID, rec.Network, rec.Nickname)
			}
			return nil
		},
	}
	return cmd
}
