package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"booki/internal/catalog"
	"booki/internal/config"
)

func newShelfCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "Manage shelves and their attribute schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newShelfCreateCommand(ctx))
	cmd.AddCommand(newShelfListCommand(ctx))
	cmd.AddCommand(newShelfShowCommand(ctx))
	cmd.AddCommand(newShelfAttrsCommand(ctx))
	cmd.AddCommand(newShelfExtendCommand(ctx))
	return cmd
}

// newShelvesCommand keeps the original top-level listing spelling.
func newShelvesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shelves",
		Short: "List shelves with their book counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listShelves(ctx, cmd)
		},
	}
}

func newShelfCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty shelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				if err := store.CreateShelf(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created shelf %q\n", args[0])
				return nil
			})
		},
	}
}

func newShelfListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shelves with their book counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listShelves(ctx, cmd)
		},
	}
}

func listShelves(ctx *commandContext, cmd *cobra.Command) error {
	return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
		shelves, err := store.Shelves(cmd.Context())
		if err != nil {
			return err
		}
		if len(shelves) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no shelves yet; create one with 'booki shelf create <name>'")
			return nil
		}
		rows := make([][]string, 0, len(shelves))
		for _, shelf := range shelves {
			rows = append(rows, []string{shelf.Name, strconv.Itoa(shelf.Books)})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"Shelf", "Books"}, rows, []columnAlignment{alignLeft, alignRight}))
		return nil
	})
}

func newShelfShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name> [field term]...",
		Short: "List a shelf's books, optionally filtered",
		Long: `List the books on a shelf with their membership identifiers. Field/term
pairs filter the same way 'booki search' does.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			predicates, err := catalog.ParsePredicates(args[1:])
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				members, err := store.SearchShelf(cmd.Context(), args[0], predicates)
				if err != nil {
					return err
				}
				for _, member := range members {
					printBookLine(cmd.OutOrStdout(), member.Hash, member.Book)
				}
				return nil
			})
		},
	}
}

func newShelfAttrsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "attrs <name>",
		Short: "Show a shelf's attribute schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				attrs, err := store.ShelfAttributes(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if len(attrs) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "shelf %q has no attributes\n", args[0])
					return nil
				}
				names := make([]string, 0, len(attrs))
				for _, attr := range attrs {
					names = append(names, attr.Name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
				return nil
			})
		},
	}
}

func newShelfExtendCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "extend <name> <attribute>...",
		Short: "Add attributes to a shelf's schema",
		Long: `Append attributes to a shelf's schema. Names already present are skipped,
so extending is safe to repeat. Attributes are never renamed or removed.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				added, err := store.ExtendShelf(cmd.Context(), args[0], args[1:])
				if err != nil {
					return err
				}
				skipped := len(args[1:]) - len(added)
				fmt.Fprintf(cmd.OutOrStdout(), "added %d attribute(s) to %q", len(added), args[0])
				if skipped > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), " (%d already present)", skipped)
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}
}
