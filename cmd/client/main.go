package main

import (
	"context"
	"os"

	"github.com/dpetrovs/zkpauth/internal/buildinfo"
	"github.com/dpetrovs/zkpauth/internal/client/cli"
	"github.com/dpetrovs/zkpauth/internal/client/config"
	"github.com/fatih/color"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		color.Red("[!] %v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		color.Red("[!] %v", err)
		os.Exit(1)
	}

}
