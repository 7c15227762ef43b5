// Package cmd implements the command-line interface of hKV. It provides a hierarchical
// command structure for running the server and talking to it as a client.
//
// The package is organized into several subpackages:
//
//   - serve: Starts the hKV server (hkv serve)
//   - kv: One client command per server command (hkv kv hget, hkv kv hmset, ...) and a
//     performance test (hkv kv perf)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set as environment variable with the HKV_ prefix
// (e.g. HKV_LOG_LEVEL=debug), in a .env file or in a config file passed with --config.
//
// See hkv --help for a list of all commands.
package cmd
