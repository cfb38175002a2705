package main

import (
	"github.com/spf13/cobra"

	"booki/internal/catalog"
	"booki/internal/config"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search [field term]...",
		Short: "List or filter the catalog",
		Long: `List the whole catalog, or filter it by field/term pairs over title and
author. A term's leading ^ anchors it to the start of the field, a trailing
$ to the end; both mean exact match. Matching is case-insensitive and all
pairs must match.`,
		Example: `  booki search
  booki search title "^The"
  booki search author herbert title dune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			predicates, err := catalog.ParsePredicates(args)
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				books, err := store.SearchBooks(cmd.Context(), predicates)
				if err != nil {
					return err
				}
				for _, book := range books {
					printBookLine(cmd.OutOrStdout(), book.Hash, book)
				}
				return nil
			})
		},
	}
}
