package util

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/serializer"
	"github.com/ValentinKolb/hKV/rpc/transport"
	"github.com/ValentinKolb/hKV/rpc/transport/grpc"
	"github.com/ValentinKolb/hKV/rpc/transport/http"
	"github.com/ValentinKolb/hKV/rpc/transport/tcp"
	"github.com/ValentinKolb/hKV/rpc/transport/unix"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables (e.g. HKV_LOG_LEVEL)
	EnvPrefix = "hkv"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig loads .env files, enables HKV_ environment variables and reads the optional
// config file (yaml, json or toml, detected by extension).
func InitConfig(configFile string) error {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}
	return nil
}

// SetupRPCClientFlags adds common RPC connection flags to a command
func SetupRPCClientFlags(cmd *cobra.Command) {
	key := "timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("The timeout in seconds of the client"))

	key = "endpoints"
	cmd.PersistentFlags().String(key, "localhost:8080", WrapString("The address of the hKV server. Multiple endpoints can be specified as a comma-separated list, requests are spread round-robin"))

	key = "conn-per-endpoint"
	cmd.PersistentFlags().Int(key, 1, WrapString("Simultaneous connections per endpoint (tcp and unix transport)"))

	key = "retries"
	cmd.PersistentFlags().Int(key, 3, WrapString("How many times to try a request"))
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() common.ClientConfig {
	return common.ClientConfig{
		Endpoints:              strings.Split(viper.GetString("endpoints"), ","),
		TimeoutSecond:          viper.GetInt("timeout"),
		RetryCount:             viper.GetInt("retries"),
		ConnectionsPerEndpoint: viper.GetInt("conn-per-endpoint"),
	}
}

// GetSerializer creates a serializer based on configuration
func GetSerializer() (serializer.IRPCSerializer, error) {
	name := viper.GetString("serializer")
	s, ok := serializer.New(name)
	if !ok {
		return nil, fmt.Errorf("invalid serializer %s (expected json or proto)", name)
	}
	return s, nil
}

// GetClientTransport creates a client transport based on configuration
func GetClientTransport() (transport.IRPCClientTransport, error) {
	switch name := viper.GetString("transport"); name {
	case "http":
		return http.NewHttpClientTransport(), nil
	case "grpc":
		return grpc.NewGrpcClientTransport(), nil
	case "tcp":
		return tcp.NewTCPClientTransport(), nil
	case "unix":
		return unix.NewUnixClientTransport(), nil
	default:
		return nil, fmt.Errorf("invalid transport %s", name)
	}
}

// GetServerTransport creates a server transport based on configuration.
// The buffer size is only used by the tcp and unix transport.
func GetServerTransport(bufferSize int) (transport.IRPCServerTransport, error) {
	switch name := viper.GetString("transport"); name {
	case "http":
		return http.NewHttpServerTransport(), nil
	case "grpc":
		return grpc.NewGrpcServerTransport(), nil
	case "tcp":
		return tcp.NewTCPServerTransport(bufferSize), nil
	case "unix":
		return unix.NewUnixServerTransport(bufferSize), nil
	default:
		return nil, fmt.Errorf("invalid transport %s", name)
	}
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
