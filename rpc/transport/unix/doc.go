// Package unix provides the Unix domain socket connectors for the base transport.
// It is meant for clients that run on the same machine as the server, where it
// avoids the TCP/IP stack entirely.
//
// The endpoint is the path of the socket file (e.g. /tmp/hkv.sock). A stale socket
// left behind by a previous server is replaced on Listen; any other file at that path
// is left alone and Listen fails. The socket file is removed again when the server
// transport is closed.
//
// Framing, request correlation and reconnects are inherited from the base package.
// The default read buffer of the server is 64 KB.
package unix
