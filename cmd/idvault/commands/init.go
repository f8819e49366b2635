package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the store and bring its schema up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := wire.Manager.DB(); err != nil {
				return err
			}
			fmt.Println("Store ready")
			return nil
		},
	}
	return cmd
}
