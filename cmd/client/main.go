package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userauth/internal/client/cli"
	"github.com/dmitrijs2005/userauth/internal/client/config"
	"github.com/dmitrijs2005/userauth/internal/flagx"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer app.Close()

	args := flagx.Positional(os.Args[1:], config.ValueFlags)
	if err := app.Run(context.Background(), args); err != nil {
		if !errors.Is(err, cli.ErrUsage) || len(args) > 0 {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		app.Close()
		os.Exit(2)
	}
}
