package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"booki/internal/catalog"
	"booki/internal/config"
	"booki/internal/editor"
	"booki/internal/identity"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <shelf>.<prefix>",
		Short: "Edit a membership's attribute values via the editor",
		Long: `Open a membership's attribute values in the editor. Every attribute the
shelf defines appears as a line; clearing a value removes the stored entry,
leaving it unset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, ok := identity.ParseRef(args[0])
			if !ok || !ref.Scoped() {
				return fmt.Errorf("%w: want <shelf>.<prefix>, got %q", catalog.ErrBadQuery, args[0])
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				member, err := store.GetMembership(cmd.Context(), ref.Shelf, ref.Prefix)
				if err != nil {
					return err
				}
				values, err := store.AttributeValuesFor(cmd.Context(), member)
				if err != nil {
					return err
				}
				if len(values) == 0 {
					return fmt.Errorf("shelf %q has no attributes; add some with 'booki shelf extend'", ref.Shelf)
				}

				fields := make([]editor.Field, 0, len(values))
				for _, value := range values {
					fields = append(fields, editor.Field{Name: value.Name, Value: value.Value})
				}

				session := &editor.Session{Command: cfg.EditorCommand()}
				comment := fmt.Sprintf("attributes of %s by %s on %q; empty a value to unset it",
					member.Book.Title, member.Book.Author, ref.Shelf)
				edits, err := session.Edit(cmd.Context(), comment, fields)
				if err != nil {
					return err
				}

				if err := store.ApplyAttributeEdits(cmd.Context(), member, edits); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s.%s\n", ref.Shelf, identity.Short(member.Hash))
				return nil
			})
		},
	}
}
