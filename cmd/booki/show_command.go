package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"booki/internal/catalog"
	"booki/internal/config"
	"booki/internal/identity"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ref>",
		Short: "Show full detail of a book or shelf membership",
		Long: `Show one record. A bare identifier prefix addresses the catalog; a
<shelf>.<prefix> reference addresses a membership on that shelf, including
its attribute values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, ok := identity.ParseRef(args[0])
			if !ok {
				return fmt.Errorf("%w: reference %q", catalog.ErrBadQuery, args[0])
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				if !ref.Scoped() {
					book, err := store.GetBook(cmd.Context(), ref.Prefix)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), renderBookDetail(book.Hash, *book, nil, nil))
					return nil
				}

				member, err := store.GetMembership(cmd.Context(), ref.Shelf, ref.Prefix)
				if err != nil {
					return err
				}
				values, err := store.AttributeValuesFor(cmd.Context(), member)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderBookDetail(member.Hash, member.Book, member, values))
				return nil
			})
		},
	}
}

var titleCaser = cases.Title(language.Und)

func renderBookDetail(id string, book catalog.Book, member *catalog.Membership, values []catalog.AttributeValue) string {
	rows := [][]string{
		{"Id", identity.Short(id)},
		{"Full id", id},
	}
	if member != nil {
		rows = append(rows,
			[]string{"Shelf", member.ShelfName},
			[]string{"Book id", identity.Short(member.Book.Hash)},
		)
	}
	rows = append(rows,
		[]string{"Title", book.Title},
		[]string{"Author", book.Author},
		[]string{"Isbn", book.ISBN},
		[]string{"Pages", pageCount(book.PageCount)},
	)
	for _, value := range values {
		display := value.Value
		if !value.Set {
			display = "(unset)"
		}
		rows = append(rows, []string{titleCaser.String(value.Name), display})
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}
