package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	box "github.com/ionutliviu/box-go-sdk"
)

func newMvCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "mv <path> <folder>",
		Short: "Move an item into another folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			acct := newAccount()

			item, err := resolveItem(ctx, acct, args[0])
			if err != nil {
				return err
			}
			dest, err := resolveFolder(ctx, acct, args[1])
			if err != nil {
				return err
			}

			outcome, err := item.ChangeParent(ctx, dest.ID(), force)
			if err != nil {
				return err
			}
			if outcome == box.MovedWithRename {
				name, _ := item.Name(ctx)
				fmt.Printf("moved into %s under a new name: %s\n", args[1], name)
				return nil
			}
			fmt.Println("moved into", args[1])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "retry under a timestamped name when the name is taken")

	return cmd
}
