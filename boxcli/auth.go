package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Verify the configured access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			acct := newAccount()

			info, err := acct.Info(ctx)
			if err != nil {
				return err
			}
			if info == nil {
				return fmt.Errorf("not authorized: set BOX_ACCESS_TOKEN or access_token in the config file")
			}

			login, _ := info["login"].(string)
			if login == "" {
				login, _ = info["name"].(string)
			}
			fmt.Println(color.GreenString("authorized as %s", login))
			return nil
		},
	}
}
