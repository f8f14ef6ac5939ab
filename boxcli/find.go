package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	box "github.com/ionutliviu/box-go-sdk"
)

func newFindCmd() *cobra.Command {
	var (
		typeTag   string
		name      string
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "find [path]",
		Short: "Find items matching attribute criteria",
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

			criteria := box.Criteria{}
			if typeTag != "" {
				criteria["type"] = typeTag
			}
			if name != "" {
				criteria["name"] = name
			}
			if len(criteria) == 0 {
				return fmt.Errorf("at least one of --type and --name is required")
			}

			var matches []box.Item
			if recursive {
				matches, err = folder.FindRecursive(ctx, criteria)
			} else {
				matches, err = folder.Find(ctx, criteria)
			}
			if err != nil {
				return err
			}

			for _, match := range matches {
				fmt.Println(displayName(ctx, match))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeTag, "type", "t", "", "match the item type (file, folder, discussion, ...)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "match the item name exactly")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into sub-folders")

	return cmd
}
