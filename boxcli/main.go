package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	box "github.com/ionutliviu/box-go-sdk"
	"github.com/ionutliviu/box-go-sdk/client"
	"github.com/ionutliviu/box-go-sdk/options"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "boxcli",
		Short:         "Browse and manage a Box account from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.boxcli.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every API call to stderr")

	rootCmd.AddCommand(
		newAuthCmd(),
		newLsCmd(),
		newTreeCmd(),
		newStatCmd(),
		newMkdirCmd(),
		newMvCmd(),
		newRmCmd(),
		newCpCmd(),
		newFindCmd(),
	)

	return rootCmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".boxcli")
	}

	viper.SetEnvPrefix("BOX")
	viper.AutomaticEnv()

	// a missing config file is fine, the token can come from the environment
	_ = viper.ReadInConfig()
}

// newAccount builds an account over the REST client, configured from viper
// keys (access_token, base_url, upload_url, user_agent) and the verbose flag.
func newAccount() *box.Account {
	var opts []options.NewClientOption[client.Client]
	if token := viper.GetString("access_token"); token != "" {
		opts = append(opts, client.WithAccessToken(token))
	}
	if baseURL := viper.GetString("base_url"); baseURL != "" {
		opts = append(opts, client.WithBaseURL(baseURL))
	}
	if uploadURL := viper.GetString("upload_url"); uploadURL != "" {
		opts = append(opts, client.WithUploadURL(uploadURL))
	}
	if userAgent := viper.GetString("user_agent"); userAgent != "" {
		opts = append(opts, client.WithUserAgent(userAgent))
	}
	if verbose {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
		opts = append(opts, client.WithLogger(logger))
	}
	return box.NewAccount(client.New(opts...))
}

// resolveItem resolves a slash path against the account root and turns the
// object model's nil-for-missing answer into a user-facing error.
func resolveItem(ctx context.Context, acct *box.Account, path string) (box.Item, error) {
	item, err := acct.Root().At(ctx, path)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%s: no such item", path)
	}
	return item, nil
}

func resolveFolder(ctx context.Context, acct *box.Account, path string) (*box.Folder, error) {
	item, err := resolveItem(ctx, acct, path)
	if err != nil {
		return nil, err
	}
	folder, ok := item.(*box.Folder)
	if !ok {
		return nil, fmt.Errorf("%s: not a folder", path)
	}
	return folder, nil
}

// splitParentPath splits a path into its containing directory and leaf name.
func splitParentPath(path string) (string, string) {
	trimmed := strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[:i], trimmed[i+1:]
	}
	return "", trimmed
}

var folderColor = color.New(color.FgBlue, color.Bold)

// displayName renders an item name for terminal output, marking folders the
// way ls does.
func displayName(ctx context.Context, item box.Item) string {
	name, err := item.Name(ctx)
	if err != nil {
		name = fmt.Sprintf("(%s %s)", item.Type(), item.ID())
	}
	if _, ok := item.(*box.Folder); ok {
		return folderColor.Sprint(name + "/")
	}
	return name
}
