package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	box "github.com/ionutliviu/box-go-sdk"
)

func newLsCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List the contents of a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			acct := newAccount()

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			folder, err := resolveFolder(ctx, acct, path)
			if err != nil {
				return err
			}

			kids, err := folder.Children(ctx)
			if err != nil {
				return err
			}

			if !long {
				for _, kid := range kids {
					fmt.Println(displayName(ctx, kid))
				}
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tSIZE\tMODIFIED\tNAME")
			for _, kid := range kids {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					kid.Type(), sizeColumn(ctx, kid), modifiedColumn(ctx, kid), displayName(ctx, kid))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "show type, size and modification time")

	return cmd
}

func sizeColumn(ctx context.Context, item box.Item) string {
	size, err := item.Size(ctx)
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%d", size)
}

func modifiedColumn(ctx context.Context, item box.Item) string {
	modified, err := item.ModifiedAt(ctx)
	if err != nil {
		return "-"
	}
	return modified.Format("2006-01-02 15:04")
}
