// Package client connects the forum CLI to its backend and to local storage.
//
// GRPCClient implements datasource.Backend over gRPC. It keeps the access
// and refresh tokens in the local metadata table, attaches the access token
// to every call and refreshes it once when the server reports it expired.
// gRPC status codes are mapped onto the user-facing error kinds of package
// common with the server's message preserved.
//
// InitDatabase opens the local SQLite file and applies the embedded goose
// migrations.
package client
