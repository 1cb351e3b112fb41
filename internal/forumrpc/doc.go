// Package forumrpc is the wire contract between the forum client and the
// backend, written down in forum.proto: request and response messages, the
// service descriptor used by the server, and a typed client stub.
//
// Messages are plain Go structs that encode themselves in the protobuf
// binary format. The codec replaces gRPC's default one in init, so
// importing this package on either side is enough.
package forumrpc
