package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"idvault/internal/domain"
	"idvault/internal/util/memzero"
)

func adoptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adopt [identifier] [private-key-hex]",
		Short: "Attach a private key to an imported identity",
		Long:  "Attach private key material to an identity recorded in \"others\"; the record moves into \"self\".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseKeyID(args[0])
			if err != nil {
				return err
			}
			raw, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("private key: %w", err)
			}
			if len(raw) != 32 {
				return fmt.Errorf("private key: want 32 bytes, got %d", len(raw))
			}
			priv := domain.MustPrivateKey(raw)
			memzero.Zero(raw)

			rec, err := wire.Identity.Adopt(cmd.Context(), id, priv)
			if err != nil {
				return err
			}
			fmt.Printf("Adopted identity %s\n", rec.ID)
			return nil
		},
	}
	return cmd
}
