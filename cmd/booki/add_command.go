package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"booki/internal/catalog"
	"booki/internal/config"
	"booki/internal/editor"
	"booki/internal/openlibrary"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog via the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				return addBookFlow(cmd, cfg, store, openlibrary.Metadata{})
			})
		},
	}
}

func newDiscoverCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "discover <isbn>",
		Short: "Add a book by ISBN, prefilled from Open Library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				client := openlibrary.NewClient(cfg)
				meta, err := client.Lookup(cmd.Context(), args[0])
				if err != nil {
					// Degrade to an empty form rather than aborting the add.
					ctx.logger().Warn("metadata lookup failed",
						slog.String("isbn", args[0]), slog.String("error", err.Error()))
					meta = openlibrary.Metadata{ISBN: args[0]}
				}
				return addBookFlow(cmd, cfg, store, meta)
			})
		},
	}
}

func addBookFlow(cmd *cobra.Command, cfg *config.Config, store *catalog.Store, meta openlibrary.Metadata) error {
	session := &editor.Session{Command: cfg.EditorCommand()}
	values, err := session.Edit(cmd.Context(), "fill in the book's details; # lines are ignored", []editor.Field{
		{Name: "isbn", Value: meta.ISBN},
		{Name: "title", Value: meta.Title},
		{Name: "author", Value: meta.Author},
		{Name: "page_count", Value: meta.PageCount},
	})
	if err != nil {
		return err
	}

	book, err := store.InsertBook(cmd.Context(), catalog.BookFields{
		ISBN:      values["isbn"],
		Title:     values["title"],
		Author:    values["author"],
		PageCount: values["page_count"],
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "added book to the catalog:")
	printBookLine(cmd.OutOrStdout(), book.Hash, *book)
	return nil
}
