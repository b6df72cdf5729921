// Package common contains shared constants and sentinel errors used across
// userauth components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "authorization"

// TokenType is the scheme prefix expected in front of the access token.
const TokenType = "Bearer"
