// Package common provides the configuration structures and the logging setup
// shared by the hKV server, client and command line.
//
// Key Components:
//
//   - ServerConfig: Configuration of a server node: endpoint, timeouts, number of
//     workers per connection, observability switches and the log level.
//
//   - ClientConfig: Configuration for client components, controlling endpoints,
//     connection count, timeouts and retry behavior.
//
//   - Logger: Custom logging implementation that plugs into dragonboat's logger
//     package, so every package can keep using logger.GetLogger(name) while the output
//     follows one format:
//
//     2025/01/01 12:00:00 INFO  | rpc             | message
package common
