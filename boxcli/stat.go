package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	box "github.com/ionutliviu/box-go-sdk"
)

func newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Show an item's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			acct := newAccount()

			item, err := resolveItem(ctx, acct, args[0])
			if err != nil {
				return err
			}

			printField("type", string(item.Type()))
			printField("id", item.ID())
			if name, err := item.Name(ctx); err == nil {
				printField("name", name)
			}
			if size, err := item.Size(ctx); err == nil {
				printField("size", fmt.Sprintf("%d", size))
			}
			if description, err := item.Description(ctx); err == nil && description != "" {
				printField("description", description)
			}
			if etag, err := item.Etag(ctx); err == nil {
				printField("etag", etag)
			}
			if created, err := item.CreatedAt(ctx); err == nil {
				printField("created", created.Format("2006-01-02 15:04:05 MST"))
			}
			if modified, err := item.ModifiedAt(ctx); err == nil {
				printField("modified", modified.Format("2006-01-02 15:04:05 MST"))
			}
			if file, ok := item.(*box.File); ok {
				if versions, err := file.Versions(ctx); err == nil {
					printField("versions", fmt.Sprintf("%d", len(versions)))
				}
			}
			return nil
		},
	}
}

func printField(label, value string) {
	fmt.Printf("%-12s %s\n", label+":", value)
}
