package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	box "github.com/ionutliviu/box-go-sdk"
)

// remotePrefix marks a path as living on the remote, the way scp marks hosts.
const remotePrefix = "box:"

func newCpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cp <src> <dst>",
		Short: "Copy a file between the local disk and the account",
		Long: `Copy a file between the local disk and the account.

Remote paths carry a "box:" prefix. Exactly one side must be remote:

  boxcli cp report.pdf box:docs        upload report.pdf into /docs
  boxcli cp box:docs/report.pdf .      download /docs/report.pdf
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			src, srcRemote := strings.CutPrefix(args[0], remotePrefix)
			dst, dstRemote := strings.CutPrefix(args[1], remotePrefix)

			switch {
			case srcRemote && !dstRemote:
				return download(ctx, newAccount(), src, dst)
			case !srcRemote && dstRemote:
				return upload(ctx, newAccount(), src, dst)
			default:
				return fmt.Errorf("exactly one of src and dst must carry the %q prefix", remotePrefix)
			}
		},
	}
}

func upload(ctx context.Context, acct *box.Account, src, dst string) error {
	local, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = local.Close() }()

	folder, err := resolveFolder(ctx, acct, dst)
	if err != nil {
		return err
	}
	file, err := folder.Upload(ctx, filepath.Base(src), local)
	if err != nil {
		return err
	}
	fmt.Println("uploaded", displayName(ctx, file))
	return nil
}

func download(ctx context.Context, acct *box.Account, src, dst string) error {
	item, err := resolveItem(ctx, acct, src)
	if err != nil {
		return err
	}
	file, ok := item.(*box.File)
	if !ok {
		return fmt.Errorf("%s: not a file", src)
	}

	content, err := file.Download(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = content.Close() }()

	// a directory destination keeps the remote name, like cp does
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		name, err := file.Name(ctx)
		if err != nil {
			return err
		}
		dst = filepath.Join(dst, name)
	}
	local, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = local.Close() }()

	if _, err := io.Copy(local, content); err != nil {
		return err
	}
	fmt.Println("downloaded to", dst)
	return nil
}
