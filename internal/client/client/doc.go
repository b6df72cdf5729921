// Package client is the gRPC client for UserAuthService. It attaches the
// access token to protected calls and maps gRPC statuses to package errors.
package client
