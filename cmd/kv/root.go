package kv

import (
	"github.com/ValentinKolb/hKV/cmd/util"
	"github.com/ValentinKolb/hKV/rpc/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rpcClient *client.Client

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:                "kv",
		Short:              "Perform key-value operations on an hKV server",
		PersistentPreRunE:  setupKVClient,
		PersistentPostRunE: closeKVClient,
	}
)

func init() {
	// Add common RPC flags to the KV command
	util.SetupRPCClientFlags(KeyValueCommands)

	key := "output"
	KeyValueCommands.PersistentFlags().StringP(key, "o", "yaml", util.WrapString("Output format of responses (yaml, json)"))

	// Add subcommands
	for _, c := range commands {
		KeyValueCommands.AddCommand(c)
	}
	KeyValueCommands.AddCommand(execCmd)
	KeyValueCommands.AddCommand(perfTestCmd)
}

// setupKVClient initializes the RPC client
func setupKVClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	if _, err := parseOutputFormat(viper.GetString("output")); err != nil {
		return err
	}

	// Get serializer and transport
	s, err := util.GetSerializer()
	if err != nil {
		return err
	}

	t, err := util.GetClientTransport()
	if err != nil {
		return err
	}

	rpcClient, err = client.NewRPCClient(util.GetClientConfig(), t, s)
	return err
}

func closeKVClient(*cobra.Command, []string) error {
	if rpcClient == nil {
		return nil
	}
	return rpcClient.Close()
}
