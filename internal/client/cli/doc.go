// Package cli implements the userauth command-line client: register, login,
// logout, users, user and ping subcommands on top of client.Client.
package cli
