package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/hKV/cmd/kv"
	"github.com/ValentinKolb/hKV/cmd/serve"
	"github.com/ValentinKolb/hKV/cmd/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.0"
)

var (
	configFile string

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "hkv",
		Short: "table-oriented key-value server",
		Long: fmt.Sprintf(`hKV (v%s)

A key-value server organized in named tables. Values are typed
(string, binary, integer, float, bool) and every command has a
batch variant.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hKV",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hKV v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(func() {
		if err := util.InitConfig(configFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})

	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", util.WrapString("Optional config file (yaml, json or toml), flags and HKV_ environment variables take precedence"))
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "proto", util.WrapString("serializer to use (proto, json)"))
	key = "transport"
	RootCmd.PersistentFlags().String(key, "tcp", util.WrapString("transport to use (tcp, unix, http, grpc)"))
	_ = viper.BindPFlags(RootCmd.PersistentFlags())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
