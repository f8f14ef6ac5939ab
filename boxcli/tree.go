package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	box "github.com/ionutliviu/box-go-sdk"
)

func newTreeCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print a folder subtree",
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

			if path == "" {
				path = "/"
			}
			fmt.Println(folderColor.Sprint(path))
			return printTree(ctx, folder, "", 1, maxDepth)
		},
	}

	cmd.Flags().IntVarP(&maxDepth, "depth", "L", 0, "descend at most this many levels (0 means no limit)")

	return cmd
}

func printTree(ctx context.Context, folder *box.Folder, prefix string, depth, maxDepth int) error {
	kids, err := folder.Children(ctx)
	if err != nil {
		return err
	}

	for i, kid := range kids {
		connector, childPrefix := "|-- ", prefix+"|   "
		if i == len(kids)-1 {
			connector, childPrefix = "`-- ", prefix+"    "
		}
		fmt.Println(prefix + connector + displayName(ctx, kid))

		sub, ok := kid.(*box.Folder)
		if !ok {
			continue
		}
		if maxDepth > 0 && depth >= maxDepth {
			continue
		}
		if err := printTree(ctx, sub, childPrefix, depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}
