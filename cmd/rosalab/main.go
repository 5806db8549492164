package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/rosalab/internal/catalog"
	"github.com/alexanderramin/rosalab/internal/cli"
	"github.com/alexanderramin/rosalab/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Config:  config.LoadConfig(),
		Catalog: catalog.Default(),
	}

	// The experience and the specimen picker both need a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
