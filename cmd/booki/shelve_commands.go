package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"booki/internal/catalog"
	"booki/internal/config"
	"booki/internal/identity"
)

func newShelveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shelve <shelf> <book-prefix>...",
		Short: "Put catalog books on a shelf",
		Long: `Place one or more catalog books, addressed by identifier prefix, on a
shelf. Shelving the same book twice creates two distinct memberships.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				shelf := args[0]
				for _, prefix := range args[1:] {
					member, err := store.AddToShelf(cmd.Context(), shelf, prefix)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "shelved %s on %q as %s.%s\n",
						identity.Short(member.Book.Hash), shelf, shelf, identity.Short(member.Hash))
				}
				return nil
			})
		},
	}
}

func newUnshelveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unshelve <shelf>.<prefix>",
		Short: "Remove a membership from a shelf",
		Long: `Remove one membership, addressed as <shelf>.<prefix>, along with any
attribute values set on it. The book stays in the catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, ok := identity.ParseRef(args[0])
			if !ok || !ref.Scoped() {
				return fmt.Errorf("%w: want <shelf>.<prefix>, got %q", catalog.ErrBadQuery, args[0])
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				member, err := store.RemoveFromShelf(cmd.Context(), ref.Shelf, ref.Prefix)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s from %q\n",
					identity.Short(member.Hash), ref.Shelf)
				return nil
			})
		},
	}
}
