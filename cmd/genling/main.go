// SPDX-License-Identifier: MIT
// Package: genling/cmd/genling
//
// main.go — genling command entry point.

// Package main generates words for constructed and natural-looking
// languages from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	genlingcmd "github.com/katalvlaran/genling/internal/cmd/genling"
	"github.com/katalvlaran/genling/internal/platform/config"
)

func main() {
	cfg, err := genlingcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := genlingcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("genling: %v", err)
	}
}
