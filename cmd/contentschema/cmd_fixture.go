package main

import (
	"context"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/wcc-platform/contentschema/datafactory"
	"github.com/wcc-platform/contentschema/page"
)

func newFixtureCmd() *cobra.Command {
	var (
		items int
		id    string
	)
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Print a generated code of conduct document that passes validation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixture(cmd.Context(), cmd.OutOrStdout(), items, id)
		},
	}
	cmd.Flags().IntVar(&items, "items", 1, "number of conduct items")
	cmd.Flags().StringVar(&id, "id", "", "page id (default coc-<uuid>)")
	return cmd
}

func runFixture(ctx context.Context, w io.Writer, items int, id string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if items < 0 {
		return fmt.Errorf("--items must not be negative")
	}
	list := make([]page.ConductItem, 0, items)
	for i := 1; i <= items; i++ {
		list = append(list, datafactory.Item(i))
	}
	opts := []datafactory.Option{datafactory.WithItems(list...)}
	if id != "" {
		opts = append(opts, datafactory.WithID(id))
	}
	p := datafactory.CodeOfConduct(opts...)
	if _, err := datafactory.Document(ctx, p); err != nil {
		return fmt.Errorf("generated fixture does not conform: %w", err)
	}
	b, err := j.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
