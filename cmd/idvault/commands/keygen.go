package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	var nickname string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := wire.Identity.Generate(cmd.Context(), nickname)
			if err != nil {
				return err
			}
			fmt.Printf("Generated identity %s\n", rec.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&nickname, "nickname", "n", "", "display nickname")
	return cmd
}
