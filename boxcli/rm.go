package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	box "github.com/ionutliviu/box-go-sdk"
)

func newRmCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			acct := newAccount()

			item, err := resolveItem(ctx, acct, args[0])
			if err != nil {
				return err
			}

			if folder, ok := item.(*box.Folder); ok && recursive {
				if err := folder.Purge(ctx); err != nil {
					return err
				}
				fmt.Println("removed", args[0])
				return nil
			}

			// the remote refuses a plain delete of a folder with content
			if err := item.Delete(ctx); err != nil {
				return err
			}
			fmt.Println("removed", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "delete a folder and everything beneath it")

	return cmd
}
