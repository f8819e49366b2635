package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"idvault/internal/domain"
)

func importCmd() *cobra.Command {
	var nickname string

	cmd := &cobra.Command{
		Use:   "import [public-key-hex]",
		Short: "Record a peer's public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}
			if len(raw) != 32 {
				return fmt.Errorf("public key: want 32 bytes, got %d", len(raw))
			}
			rec, err := wire.Identity.Import(cmd.Context(), domain.MustPublicKey(raw), nickname)
			if err != nil {
				return err
			}
			fmt.Printf("Imported identity %s\n", rec.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&nickname, "nickname", "n", "", "display nickname")
	return cmd
}
