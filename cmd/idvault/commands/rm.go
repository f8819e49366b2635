package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"idvault/internal/domain"
)

func rmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm [identifier]",
		Short: "Delete a record by identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			switch id := id.(type) {
			case domain.KeyID:
				err = wire.Identity.Remove(cmd.Context(), id)
			case domain.PersonID:
				err = wire.Profile.Remove(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", id)
			return nil
		},
	}
	return cmd
}
