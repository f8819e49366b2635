package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"idvault/internal/domain"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Create, link, and list social profiles",
	}
	cmd.AddCommand(profileNewCmd(), profileLinkCmd(), profileUnlinkCmd(), profileListCmd())
	return cmd
}

func profileNewCmd() *cobra.Command {
	var nickname string

	cmd := &cobra.Command{
		Use:   "new [network]",
		Short: "Create a profile on a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := wire.Profile.Create(cmd.Context(), nickname, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created profile %s\n", rec.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&nickname, "nickname", "n", "", "display nickname")
	return cmd
}

func profileLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link [profile-id] [identity-id]",
		Short: "Link a profile to a cryptographic identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePersonID(args[0])
			if err != nil {
				return err
			}
			k, err := domain.ParseKeyID(args[1])
			if err != nil {
				return err
			}
			if _, err := wire.Profile.Link(cmd.Context(), p, k); err != nil {
				return err
			}
			fmt.Printf("Linked %s -> %s\n", p, k)
			return nil
		},
	}
	return cmd
}

func profileUnlinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlink [profile-id]",
		Short: "Clear a profile's identity link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePersonID(args[0])
			if err != nil {
				return err
			}
			if _, err := wire.Profile.Unlink(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Unlinked %s\n", p)
			return nil
		},
	}
	return cmd
}

func profileListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [network]",
		Short: "List profiles, optionally filtered by network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				profiles []domain.Profile
				err      error
			)
			if len(args) == 1 {
				profiles, err = wire.Profile.ByNetwork(cmd.Context(), args[0])
			} else {
				profiles, err = wire.Profile.List(cmd.Context())
			}
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
