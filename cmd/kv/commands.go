package kv

import (
	"fmt"
	"os"
	"strings"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const valueHelp = `Values are typed with a prefix: str:, int:, float:, bool: or bin: (base64).
Values without a known prefix are stored as strings.`

var commands = []*cobra.Command{
	{
		Use:   "hget [table] [key]",
		Short: "Reads the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(command.NewHget(args[0], args[1]))
		},
	},
	{
		Use:   "hmget [table] [key]...",
		Short: "Reads the values of multiple keys",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(command.NewHmget(args[0], args[1:]))
		},
	},
	{
		Use:   "hgetall [table]",
		Short: "Reads all pairs of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(command.NewHgetall(args[0]))
		},
	},
	{
		Use:   "hset [table] [key] [value]",
		Short: "Sets the value of a key and prints the previous value",
		Long:  valueHelp,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := kv.ParseValue(args[2])
			if err != nil {
				return err
			}
			return execute(command.NewHset(args[0], args[1], v))
		},
	},
	{
		Use:   "hmset [table] [key=value]...",
		Short: "Sets multiple keys and prints the previous values",
		Long:  valueHelp,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(args[1:])
			if err != nil {
				return err
			}
			return execute(command.NewHmset(args[0], pairs))
		},
	},
	{
		Use:   "hdel [table] [key]",
		Short: "Deletes a key and prints the removed value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(command.NewHdel(args[0], args[1]))
		},
	},
	{
		Use:   "hmdel [table] [key]...",
		Short: "Deletes multiple keys and prints the removed values",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(command.NewHmdel(args[0], args[1:]))
		},
	},
	{
		Use:   "hexists [table] [key]",
		Short: "Checks whether a key exists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(command.NewHexists(args[0], args[1]))
		},
	},
	{
		Use:   "hmexists [table] [key]...",
		Short: "Checks for multiple keys whether they exist",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(command.NewHmexists(args[0], args[1:]))
		},
	},
}

var execCmd = &cobra.Command{
	Use:   "exec [json]",
	Short: "Executes a command given as JSON",
	Long: `Executes a command given in its JSON form, e.g.

  hkv kv exec '{"hget":{"table":"score","key":"u1"}}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req command.CommandRequest
		if err := req.UnmarshalJSON([]byte(args[0])); err != nil {
			return fmt.Errorf("invalid command: %w", err)
		}
		return execute(req)
	},
}

// execute sends the request and prints the response
func execute(req command.CommandRequest) error {
	resp, err := rpcClient.Execute(req)
	if err != nil {
		return err
	}

	format, err := parseOutputFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	out, err := formatResponse(resp, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

// parsePairs parses key=value arguments
func parsePairs(args []string) ([]kv.Pair, error) {
	pairs := make([]kv.Pair, 0, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid pair format: %s (expected key=value)", arg)
		}
		v, err := kv.ParseValue(raw)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, kv.NewPair(key, v))
	}
	return pairs, nil
}
