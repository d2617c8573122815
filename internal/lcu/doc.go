// Package lcu discovers the running game client and provides an authenticated
// HTTP client for its local API.
//
// The client publishes its ephemeral port and password in a lockfile inside
// the install directory; Discover parses it and Client wraps the resulting
// https://127.0.0.1:<port> endpoint with basic auth. The client's certificate
// is self-signed, so TLS verification is skipped for the loopback connection
// only.
package lcu
