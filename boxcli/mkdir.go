package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	box "github.com/ionutliviu/box-go-sdk"
)

func newMkdirCmd() *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			acct := newAccount()

			parentPath, name := splitParentPath(args[0])
			if name == "" {
				return fmt.Errorf("%s: missing folder name", args[0])
			}
			parent, err := resolveFolder(ctx, acct, parentPath)
			if err != nil {
				return err
			}

			if !unique {
				created, err := parent.CreateFolder(ctx, name)
				if err != nil {
					return err
				}
				fmt.Println("created", displayName(ctx, created))
				return nil
			}

			created, outcome, err := parent.CreateFolderWithUniqueName(ctx, name)
			if err != nil {
				return err
			}
			if outcome == box.CreatedWithRename {
				fmt.Println("name was taken, created", displayName(ctx, created))
				return nil
			}
			fmt.Println("created", displayName(ctx, created))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "retry under a timestamped name when the name is taken")

	return cmd
}
