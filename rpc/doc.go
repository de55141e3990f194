// Package rpc serves the catalog to AI clients over JSON-RPC 2.0. The
// transport is stdio by default, TCP when a listen address is set; both
// use VS Code style header framing. Domain failures map to stable
// application error codes so clients never parse message strings.
package rpc
