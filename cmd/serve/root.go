package serve

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	cmdUtil "github.com/ValentinKolb/hKV/cmd/util"
	"github.com/ValentinKolb/hKV/lib/service"
	"github.com/ValentinKolb/hKV/lib/store"
	"github.com/ValentinKolb/hKV/lib/store/instrumented"
	"github.com/ValentinKolb/hKV/lib/store/memstore"
	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the hKV server",
		Long:    `Start the hKV server with the specified configuration. The configuration can be set via command line flags, environment variables or a config file. The format of the environment variables is HKV_<flag> (e.g. HKV_TIMEOUT=15)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	key := "endpoint"
	ServeCmd.PersistentFlags().String(key, "0.0.0.0:8080", cmdUtil.WrapString("The address on which the API will listen (e.g. 0.0.0.0:8080 or /tmp/hkv.sock for the unix transport)"))

	key = "timeout"
	ServeCmd.PersistentFlags().Int64(key, 5, cmdUtil.WrapString("Timeout in seconds for a single request/response round trip"))

	key = "workers-per-conn"
	ServeCmd.PersistentFlags().Int(key, 100, cmdUtil.WrapString("How many requests of a single connection are processed concurrently (tcp and unix transport)"))

	key = "buffer-size"
	ServeCmd.PersistentFlags().Int(key, 64, cmdUtil.WrapString("The size of the read buffer per connection (in KB, tcp and unix transport)"))

	key = "metrics"
	ServeCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Record storage metrics (exposed on /metrics by the http transport)"))

	key = "stats-interval"
	ServeCmd.PersistentFlags().Int64(key, 0, cmdUtil.WrapString("Log command statistics every n seconds, 0 disables the statistics log"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	serveCmdConfig.Endpoint = viper.GetString("endpoint")
	serveCmdConfig.TimeoutSecond = viper.GetInt64("timeout")
	serveCmdConfig.WorkersPerConn = viper.GetInt("workers-per-conn")
	serveCmdConfig.Metrics = viper.GetBool("metrics")
	serveCmdConfig.StatsIntervalSecond = viper.GetInt64("stats-interval")
	serveCmdConfig.LogLevel = viper.GetString("log-level")

	if serveCmdConfig.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if _, err := common.ParseLogLevel(serveCmdConfig.LogLevel); err != nil {
		return err
	}
	return nil
}

// run starts the hKV server
func run(_ *cobra.Command, _ []string) error {
	if err := common.InitLoggers(*serveCmdConfig); err != nil {
		return err
	}

	s, err := cmdUtil.GetSerializer()
	if err != nil {
		return err
	}

	t, err := cmdUtil.GetServerTransport(viper.GetInt("buffer-size") * 1024)
	if err != nil {
		return err
	}

	// Create the store
	var st store.IStore = memstore.NewMemStore()
	if serveCmdConfig.Metrics {
		st = instrumented.New(st, nil)
	}

	// Create the service
	stats := service.NewStats(nil)
	svc := service.NewBuilder(st).
		Use(service.LogHooks{}).
		Use(stats).
		Build()

	if serveCmdConfig.StatsIntervalSecond > 0 {
		go stats.LogPeriodically(time.Duration(serveCmdConfig.StatsIntervalSecond) * time.Second)
	}

	serv := server.NewRPCServer(*serveCmdConfig, svc, t, s)

	// Stop the transport on SIGINT/SIGTERM, Serve returns once it is closed
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		server.Logger.Infof("Received %s, shutting down", sig)
		if err := serv.Close(); err != nil {
			server.Logger.Errorf("Failed to close transport: %v", err)
		}
	}()

	return serv.Serve()
}
