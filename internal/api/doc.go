// Package api defines the UserAuthService wire contract: request and response
// messages, the gRPC service description, a client stub, and the JSON codec
// the messages travel in.
package api
