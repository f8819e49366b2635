package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"idvault/internal/domain"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [identifier]",
		Short: "Print one record in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			switch id := id.(type) {
			case domain.KeyID:
				return showCryptoID(cmd, id)
			case domain.PersonID:
				return showProfile(cmd, id)
			default:
				return &domain.DecodeError{Tag: string(id.Kind())}
			}
		},
	}
	return cmd
}

func showCryptoID(cmd *cobra.Command, id domain.KeyID) error {
	rec, ok, err := wire.Identity.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no identity %s", id)
	}
	partition := "others"
	if rec.IsSelf() {
		partition = "self"
	}
	fmt.Printf("Identifier:  %s\n", rec.ID)
	fmt.Printf("Fingerprint: %s\n", rec.ID.Fingerprint())
	fmt.Printf("Partition:   %s\n", partition)
	fmt.Printf("Nickname:    %s\n", rec.Nickname)
	fmt.Printf("Created:     %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	for _, p := range rec.Profiles {
		fmt.Printf("Profile:     %s\n", p)
	}
	return nil
}

func showProfile(cmd *cobra.Command, id domain.PersonID) error {
	rec, ok, err := wire.Profile.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no profile %s", id)
	}
	fmt.Printf("Identifier: %s\n", rec.ID)
	fmt.Printf("Network:    %s\n", rec.Network)
	fmt.Printf("Nickname:   %s\n", rec.Nickname)
	if rec.Linked != nil {
		fmt.Printf("Identity:   %s\n", rec.Linked)
	}
	fmt.Printf("Created:    %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
